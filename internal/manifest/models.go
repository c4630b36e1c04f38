package manifest

import (
	"strings"

	"github.com/lehigh-university-libraries/labelcheck/internal/verification"
)

// Columns is the manifest header, in template order
var Columns = []string{
	"brandName",
	"classType",
	"alcoholContent",
	"netContents",
	"producerNameAddress",
	"countryOfOrigin",
	"beverageType",
	"imageFileName",
}

// Row is one label of a batch manifest: the application values and the
// image file they belong to
type Row struct {
	BrandName           string `json:"brandName" parquet:"brandName"`
	ClassType           string `json:"classType" parquet:"classType"`
	AlcoholContent      string `json:"alcoholContent" parquet:"alcoholContent"`
	NetContents         string `json:"netContents" parquet:"netContents"`
	ProducerNameAddress string `json:"producerNameAddress" parquet:"producerNameAddress"`
	CountryOfOrigin     string `json:"countryOfOrigin,omitempty" parquet:"countryOfOrigin,optional"`
	BeverageType        string `json:"beverageType,omitempty" parquet:"beverageType,optional"`
	ImageFileName       string `json:"imageFileName" parquet:"imageFileName"`
}

// Expected returns the row as verification input. Beverage type defaults to spirits.
func (r Row) Expected() verification.ExpectedValues {
	beverageType := verification.BeverageType(strings.ToLower(strings.TrimSpace(r.BeverageType)))
	if beverageType == "" {
		beverageType = verification.Spirits
	}

	return verification.ExpectedValues{
		BrandName:           r.BrandName,
		ClassType:           r.ClassType,
		AlcoholContent:      r.AlcoholContent,
		NetContents:         r.NetContents,
		ProducerNameAddress: r.ProducerNameAddress,
		CountryOfOrigin:     r.CountryOfOrigin,
		BeverageType:        beverageType,
	}
}

func (r *Row) set(column, value string) {
	switch column {
	case "brandName":
		r.BrandName = value
	case "classType":
		r.ClassType = value
	case "alcoholContent":
		r.AlcoholContent = value
	case "netContents":
		r.NetContents = value
	case "producerNameAddress":
		r.ProducerNameAddress = value
	case "countryOfOrigin":
		r.CountryOfOrigin = value
	case "beverageType":
		r.BeverageType = value
	case "imageFileName":
		r.ImageFileName = value
	}
}
