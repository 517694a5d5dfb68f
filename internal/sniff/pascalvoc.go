package sniff

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/hamedhamzeh/annotex/internal/types"
)

// PascalVOC detects Pascal VOC bounding-box annotations: a well-formed XML
// document whose root element is <annotation> with at least one direct
// <object> child.
type PascalVOC struct{}

func (PascalVOC) Name() string { return "pascal-voc" }

func (PascalVOC) Format() types.Format { return types.FormatPascalVOC }

// Match parses the full token stream so a document that is malformed
// anywhere is rejected, matching strict whole-document parsing.
func (PascalVOC) Match(content []byte) bool {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var (
		depth      int
		rootOK     bool
		rootClosed bool
		hasObject  bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			// A well-formed document has exactly one root element.
			if depth == 0 {
				if rootClosed || t.Name.Local != "annotation" {
					return false
				}
				rootOK = true
			} else if depth == 1 && t.Name.Local == "object" {
				hasObject = true
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				rootClosed = true
			}
		case xml.CharData:
			// Character data outside the root element is only legal
			// when it is whitespace.
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return false
			}
		}
	}
	return rootOK && hasObject
}
