package databases

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Gunal77/web-hackathon/models"
)

const seedTitleLength = 40

var criticalSamples = []string{
	"I have no hope left. Feeling suicidal due to unresolved land dispute. Need immediate help.",
	"Extremely frustrated with water supply issue. Nothing works, cannot take this anymore. Give up.",
	"Mental distress and anxiety from harassment by local officials. Need support urgently.",
	"Health emergency - father had stroke, please arrange immediate ambulance and hospital access.",
}

// balancedDescriptions is indexed like models.Sentiments so the rotation gives
// each district a spread of derived sentiments
var balancedDescriptions = []string{
	"Thank you for the new street lights installed in our ward.",
	"Request for a new ration card for my family.",
	"Complaint regarding irregular garbage collection in our street.",
	"Threat from moneylenders after crop loss, I see no hope without relief.",
}

var balancedDistricts = []string{
	"Tiruchirappalli", "Salem", "Erode", "Thanjavur", "Dindigul", "Vellore", "Dharmapuri", "Cuddalore",
}

type seeder struct {
	now   time.Time
	next  int
	manus []models.Manu
}

func (s *seeder) add(district, taluk string, dept models.DepartmentCategory, desc string, pendingDays int, status models.ManuStatus) {
	s.next++
	created := s.now.Add(-time.Duration(pendingDays) * day)
	m := models.Manu{
		ID:                 strconv.Itoa(s.next),
		CitizenName:        fmt.Sprintf("Citizen %d", s.next),
		District:           district,
		Taluk:              taluk,
		DepartmentCategory: dept,
		Title:              seedTitle(desc),
		DescriptionText:    desc,
		Status:             status,
		CreatedDate:        created,
		LastUpdatedDate:    created,
	}
	if status == models.StatusResolved {
		m.PendingDays = pendingDays
	}
	s.manus = append(s.manus, m)
}

func seedTitle(desc string) string {
	r := []rune(desc)
	if len(r) > seedTitleLength {
		r = r[:seedTitleLength]
	}
	return string(r)
}

// SeedManus builds the demo data set relative to now: a Chennai cluster with
// critical cases, mostly positive and neutral Coimbatore cases, a Madurai
// backlog, and a balanced mix across eight more districts. Only stored fields
// are set; sentiment, risk and score are derived on read.
func SeedManus(now time.Time) []models.Manu {
	s := &seeder{now: now}

	for ti, taluk := range districtTaluks["Chennai"] {
		for i := 0; i < 8; i++ {
			dept := models.DepartmentWaterSupply
			desc := "Complaint about long-standing water logging affecting daily life."
			if i%2 == 0 {
				dept = models.DepartmentRoads
				desc = "Severe road damage causing accidents and school access issues."
			}
			switch {
			case ti == 0 && i < 4:
				desc = criticalSamples[i%len(criticalSamples)]
			case i%3 == 0:
				desc = "Threat from local contractor after repeated road damage complaints."
			}
			status := models.StatusSubmitted
			if i%4 == 0 {
				status = models.StatusInProgress
			}
			s.add("Chennai", taluk, dept, desc, 10+i, status)
		}
	}

	for _, taluk := range districtTaluks["Coimbatore"] {
		for i := 0; i < 6; i++ {
			desc := "Request for improved public facilities."
			if i%4 == 0 {
				desc = "Appreciation for quick resolution of water supply problem."
			}
			status := models.StatusSubmitted
			if i%3 == 0 {
				status = models.StatusResolved
			}
			s.add("Coimbatore", taluk, models.DepartmentCategories[i%len(models.DepartmentCategories)], desc, i, status)
		}
	}

	for _, taluk := range districtTaluks["Madurai"] {
		for i := 0; i < 7; i++ {
			dept := models.DepartmentEducation
			desc := "Please expedite pending infrastructure works in government school."
			if i%3 == 0 {
				desc = "Complaint about delayed school repairs despite earlier petitions."
			}
			if i%2 == 0 {
				dept = models.DepartmentHealth
				desc = "Request for additional doctors in PHC; long waiting times."
				if i%3 == 0 {
					desc = "Complaint about PHC staffing shortage despite earlier petitions."
				}
			}
			s.add("Madurai", taluk, dept, desc, 15+i, models.StatusInProgress)
		}
	}

	for _, district := range balancedDistricts {
		for _, taluk := range districtTaluks[district] {
			for i := 0; i < 5; i++ {
				k := s.next + 2 + i
				status := models.StatusSubmitted
				switch {
				case k%3 == 0:
					status = models.StatusResolved
				case k%2 == 0:
					status = models.StatusInProgress
				}
				s.add(district, taluk,
					models.DepartmentCategories[k%len(models.DepartmentCategories)],
					balancedDescriptions[k%len(balancedDescriptions)],
					k%18, status)
			}
		}
	}

	return s.manus
}
