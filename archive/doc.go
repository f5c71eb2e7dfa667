// Package archive reads and writes XML documents stored as a single entry
// of a zip container, such as Ariane .tml survey files whose payload is
// "Data.xml".
//
// # Usage
//
//	doc, err := archive.Load("cave.tml")
//	if err != nil {
//	    return err
//	}
//	err = archive.Save("copy.tml", doc)
//
// Payloads are decoded as UTF-8; a UTF-8 byte order mark is dropped and
// UTF-16 payloads with a byte order mark are converted. Any other invalid
// UTF-8 is reported as ErrEncoding.
package archive
