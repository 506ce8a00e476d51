package form

type field int

const (
	fieldDate field = iota
	fieldBloodGroup
	fieldDivision
	fieldShow
)

// fieldCount is the number of value fields; Show follows them.
const fieldCount = int(fieldShow)

func (f field) label() string {
	switch f {
	case fieldDate:
		return "Date"
	case fieldBloodGroup:
		return "Blood group"
	case fieldDivision:
		return "Division"
	case fieldShow:
		return "Show"
	}
	return ""
}

var bloodGroups = []string{"A+", "B+", "AB+", "O+", "A-", "B-", "AB-", "O-"}

var divisions = []string{
	"Dhaka", "Chottogram", "Rajshahi", "Khulna",
	"Borishal", "Sylhet", "Rangpur", "Moymonsingh",
}

// options lists what a list field offers; nil for the date field.
func (f field) options() []string {
	switch f {
	case fieldBloodGroup:
		return bloodGroups
	case fieldDivision:
		return divisions
	case fieldDate, fieldShow:
	}
	return nil
}

const incompleteMessage = "Fill up the form!"
