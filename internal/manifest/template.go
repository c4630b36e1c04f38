package manifest

import (
	"bytes"
	"encoding/csv"
)

var exampleRow = []string{
	"OLD TOM DISTILLERY",
	"Kentucky Straight Bourbon Whiskey",
	"45% Alc./Vol.",
	"750 mL",
	"Old Tom Distillery, Louisville, KY",
	"",
	"spirits",
	"label1.jpg",
}

// Template returns a CSV manifest with the header and one example row
func Template() string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(Columns)
	_ = w.Write(exampleRow)
	w.Flush()
	return buf.String()
}
