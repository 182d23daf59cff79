package report

import (
	"fmt"
	"strings"
)

// DateLayout is the dd-mm-yyyy form used for every date on an FIR.
const DateLayout = "02-01-2006"

// IncidentDetails are the form fields collected alongside the case description.
type IncidentDetails struct {
	DateOfIncident     string
	TimeOfIncident     string
	PlaceOfOccurrence  string
	NatureOfOffense    string
	ComplainantName    string
	ComplainantContact string
	ComplainantAddress string
	ComplainantID      string
	AccusedName        string
	AccusedAddress     string
	AccusedDescription string
}

// Fields returns label/value pairs in form order.
func (d IncidentDetails) Fields() [][2]string {
	return [][2]string{
		{"Date of Incident", d.DateOfIncident},
		{"Time of Incident", d.TimeOfIncident},
		{"Place of Occurrence", d.PlaceOfOccurrence},
		{"Nature of Offense", d.NatureOfOffense},
		{"Complainant Name", d.ComplainantName},
		{"Complainant Contact", d.ComplainantContact},
		{"Complainant Address", d.ComplainantAddress},
		{"Complainant ID", d.ComplainantID},
		{"Accused Name", d.AccusedName},
		{"Accused Address", d.AccusedAddress},
		{"Accused Description", d.AccusedDescription},
	}
}

// String renders the details one "Label: value" per line. Empty values are
// shown as "Not provided".
func (d IncidentDetails) String() string {
	var b strings.Builder
	for _, f := range d.Fields() {
		v := strings.TrimSpace(f[1])
		if v == "" {
			v = "Not provided"
		}
		fmt.Fprintf(&b, "%s: %s\n", f[0], v)
	}
	return b.String()
}
