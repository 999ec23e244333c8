package bill

import (
	"strings"

	appErrors "FutureYako/internal/errors"
)

type Category string

const (
	CategoryUtility       Category = "Utility"
	CategoryInternet      Category = "Internet"
	CategoryMobile        Category = "Mobile"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

type ReferenceType string

const (
	ReferenceControl ReferenceType = "control"
	ReferencePhone   ReferenceType = "phone"
	ReferenceLipa    ReferenceType = "lipa"
)

func (r ReferenceType) Label() string {
	switch r {
	case ReferenceControl:
		return "Control no"
	case ReferencePhone:
		return "Phone no"
	case ReferenceLipa:
		return "Lipa no"
	default:
		return string(r)
	}
}

type Biller struct {
	Id       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
}

var catalogue = []Biller{
	{Id: "tanesco", Name: "TANESCO (Electricity)", Category: CategoryUtility},
	{Id: "dawasa", Name: "DAWASA (Water)", Category: CategoryUtility},
	{Id: "duwasa", Name: "DUWASA (Water)", Category: CategoryUtility},
	{Id: "ttcl", Name: "TTCL", Category: CategoryInternet},
	{Id: "vodacom", Name: "Vodacom", Category: CategoryMobile},
	{Id: "airtel", Name: "Airtel", Category: CategoryMobile},
	{Id: "tigo", Name: "Tigo", Category: CategoryMobile},
	{Id: "halotel", Name: "Halotel", Category: CategoryMobile},
	{Id: "zantel", Name: "Zantel", Category: CategoryMobile},
	{Id: "azam", Name: "Azam TV", Category: CategoryEntertainment},
	{Id: "dstv", Name: "DStv", Category: CategoryEntertainment},
	{Id: "startimes", Name: "StarTimes", Category: CategoryEntertainment},
	{Id: "other", Name: "Other company (not listed)", Category: CategoryOther},
}

func Billers() []Biller {
	out := make([]Biller, len(catalogue))
	copy(out, catalogue)
	return out
}

// Search matches billers whose name contains query, ignoring case. An empty
// query returns the whole catalogue.
func Search(query string) []Biller {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Billers()
	}

	out := make([]Biller, 0)
	for _, b := range catalogue {
		if strings.Contains(strings.ToLower(b.Name), query) {
			out = append(out, b)
		}
	}
	return out
}

func FindBiller(id string) (Biller, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, b := range catalogue {
		if b.Id == id {
			return b, nil
		}
	}
	return Biller{}, appErrors.ErrBillerNotFound.WithDetails(map[string]interface{}{
		"biller_id": id,
	})
}
