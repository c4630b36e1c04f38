package verification

// FieldKind identifies one of the label attributes subject to verification
type FieldKind string

const (
	BrandName           FieldKind = "brandName"
	ClassType           FieldKind = "classType"
	AlcoholContent      FieldKind = "alcoholContent"
	NetContents         FieldKind = "netContents"
	ProducerNameAddress FieldKind = "producerNameAddress"
	CountryOfOrigin     FieldKind = "countryOfOrigin"
	GovernmentWarning   FieldKind = "governmentWarning"
)

// Fields lists every field kind in the order verdicts are reported
var Fields = []FieldKind{
	BrandName,
	ClassType,
	AlcoholContent,
	NetContents,
	ProducerNameAddress,
	CountryOfOrigin,
	GovernmentWarning,
}

var displayNames = map[FieldKind]string{
	BrandName:           "Brand Name",
	ClassType:           "Class/Type",
	AlcoholContent:      "Alcohol Content",
	NetContents:         "Net Contents",
	ProducerNameAddress: "Producer Name & Address",
	CountryOfOrigin:     "Country of Origin",
	GovernmentWarning:   "Government Warning",
}

// DisplayName returns the human-readable name of the field
func (k FieldKind) DisplayName() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return string(k)
}

// Status is the outcome of comparing one field
type Status string

const (
	StatusMatch        Status = "match"
	StatusMismatch     Status = "mismatch"
	StatusNotFound     Status = "not_found"
	StatusPartialMatch Status = "partial_match"
)

// OverallStatus is the outcome for a whole label
type OverallStatus string

const (
	OverallPass         OverallStatus = "pass"
	OverallFail         OverallStatus = "fail"
	OverallReviewNeeded OverallStatus = "review_needed"
)

// BeverageType is the product category declared on the application
type BeverageType string

const (
	Wine    BeverageType = "wine"
	Beer    BeverageType = "beer"
	Spirits BeverageType = "spirits"
)

// GovernmentWarningText is the statutory health warning required by 27 CFR Part 16.
// It is the only valid expected value for the GovernmentWarning field.
const GovernmentWarningText = `GOVERNMENT WARNING: (1) According to the Surgeon General, women should not drink alcoholic beverages during pregnancy because of the risk of birth defects. (2) Consumption of alcoholic beverages impairs your ability to drive a car or operate machinery, and may cause health problems.`

// ExpectedValues holds the operator-supplied values from the application
type ExpectedValues struct {
	BrandName           string       `json:"brandName" yaml:"brandname"`
	ClassType           string       `json:"classType" yaml:"classtype"`
	AlcoholContent      string       `json:"alcoholContent" yaml:"alcoholcontent"`
	NetContents         string       `json:"netContents" yaml:"netcontents"`
	ProducerNameAddress string       `json:"producerNameAddress" yaml:"producernameaddress"`
	CountryOfOrigin     string       `json:"countryOfOrigin,omitempty" yaml:"countryoforigin,omitempty"`
	BeverageType        BeverageType `json:"beverageType,omitempty" yaml:"beveragetype,omitempty"`
}

// Get returns the expected value for a field. The government warning always
// resolves to GovernmentWarningText.
func (e ExpectedValues) Get(kind FieldKind) string {
	switch kind {
	case BrandName:
		return e.BrandName
	case ClassType:
		return e.ClassType
	case AlcoholContent:
		return e.AlcoholContent
	case NetContents:
		return e.NetContents
	case ProducerNameAddress:
		return e.ProducerNameAddress
	case CountryOfOrigin:
		return e.CountryOfOrigin
	case GovernmentWarning:
		return GovernmentWarningText
	default:
		return ""
	}
}

// ExtractedValues holds what the extraction service read from the label.
// A nil field means the value was absent or illegible.
type ExtractedValues struct {
	BrandName           *string `json:"brandName" yaml:"brandname"`
	ClassType           *string `json:"classType" yaml:"classtype"`
	AlcoholContent      *string `json:"alcoholContent" yaml:"alcoholcontent"`
	NetContents         *string `json:"netContents" yaml:"netcontents"`
	ProducerNameAddress *string `json:"producerNameAddress" yaml:"producernameaddress"`
	CountryOfOrigin     *string `json:"countryOfOrigin" yaml:"countryoforigin"`
	GovernmentWarning   *string `json:"governmentWarning" yaml:"governmentwarning"`
}

// Get returns the extracted value for a field, nil when absent
func (e ExtractedValues) Get(kind FieldKind) *string {
	switch kind {
	case BrandName:
		return e.BrandName
	case ClassType:
		return e.ClassType
	case AlcoholContent:
		return e.AlcoholContent
	case NetContents:
		return e.NetContents
	case ProducerNameAddress:
		return e.ProducerNameAddress
	case CountryOfOrigin:
		return e.CountryOfOrigin
	case GovernmentWarning:
		return e.GovernmentWarning
	default:
		return nil
	}
}

// Verdict is the result of comparing one expected value to one extracted value
type Verdict struct {
	Status  Status `json:"status" yaml:"status"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// FieldVerdict is a Verdict annotated with the field it was computed for
type FieldVerdict struct {
	Field     FieldKind `json:"field" yaml:"field"`
	FieldName string    `json:"fieldName" yaml:"fieldname"`
	Expected  string    `json:"expected" yaml:"expected"`
	Extracted *string   `json:"extracted" yaml:"extracted"`
	Verdict   `yaml:",inline"`
}

// LabelResult is the verification outcome for a single label
type LabelResult struct {
	Success             bool            `json:"success" yaml:"success"`
	ProcessingTimeMs    int64           `json:"processingTimeMs" yaml:"processingtimems"`
	ExtractedValues     ExtractedValues `json:"extractedValues" yaml:"extractedvalues"`
	VerificationResults []FieldVerdict  `json:"verificationResults" yaml:"verificationresults"`
	OverallStatus       OverallStatus   `json:"overallStatus" yaml:"overallstatus"`
}

// BatchRecord is one label's outcome as handed to AggregateBatch. Err is set
// when the label's pipeline failed before any verdicts were produced.
type BatchRecord struct {
	ID     string
	Result *LabelResult
	Err    error
}

// BatchResult is one entry of a BatchSummary
type BatchResult struct {
	ImageID string      `json:"imageId" yaml:"imageid"`
	Error   string      `json:"error,omitempty" yaml:"error,omitempty"`
	Result  LabelResult `json:"result" yaml:"result"`
}

// BatchSummary aggregates the outcome of many labels
type BatchSummary struct {
	TotalLabels           int           `json:"totalLabels" yaml:"totallabels"`
	Passed                int           `json:"passed" yaml:"passed"`
	Failed                int           `json:"failed" yaml:"failed"`
	ReviewNeeded          int           `json:"reviewNeeded" yaml:"reviewneeded"`
	Results               []BatchResult `json:"results" yaml:"results"`
	TotalProcessingTimeMs int64         `json:"totalProcessingTimeMs" yaml:"totalprocessingtimems"`
}
