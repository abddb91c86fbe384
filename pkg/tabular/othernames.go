package tabular

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/rdftaxon/pkg/taxonomy"
)

// OtherNamesHeader is the header of the other names table.
var OtherNamesHeader = []string{"Identifier", "Other_Name"}

// authorYear finds a year of an authorship citation.
var authorYear = regexp.MustCompile(` [1-2]\d{3}\b`)

// RetainedOtherNames drops names that repeat the previously kept name
// with an authorship citation appended. The input is expected in
// lexicographic order, so a citation variant follows its base name.
//
// Examples of dropped second names:
//
//	"Agromonas" and "Agromonas Ohta and Hattori 1985"
//	"Sarcobium" and "Sarcobium Drozanski 1991"
//	"Eriophorum crinigerum (A.Gray) Beetle" and
//	"Eriophorum crinigerum (A.Gray) Beetle, 1942"
func RetainedOtherNames(names []string) []string {
	var res []string
	var prev string
	for i, v := range names {
		if i > 0 && strings.HasPrefix(v, prev) && authorYear.MatchString(v) {
			continue
		}
		res = append(res, v)
		prev = v
	}
	return res
}

// OtherNameRows returns rows of the other names table for an entry.
func OtherNameRows(e *taxonomy.Entry) [][]string {
	names := RetainedOtherNames(e.OtherNames())
	if len(names) == 0 {
		return nil
	}

	id := strconv.Itoa(e.ID)
	res := make([][]string, len(names))
	for i, v := range names {
		res[i] = []string{id, v}
	}
	return res
}
