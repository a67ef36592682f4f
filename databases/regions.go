package databases

import "github.com/Gunal77/web-hackathon/models"

// Map zoom levels
const (
	StateZoom    = 7
	DistrictZoom = 10
)

// TamilNaduCenter is the default map view covering the whole state
var TamilNaduCenter = models.Coordinates{Lat: 11.1271, Lng: 78.6569, Zoom: StateZoom}

// districts keeps the display order, with Kanyakumari last
var districts = []string{
	"Ariyalur",
	"Chengalpattu",
	"Chennai",
	"Coimbatore",
	"Cuddalore",
	"Dharmapuri",
	"Dindigul",
	"Erode",
	"Kallakurichi",
	"Kancheepuram",
	"Karur",
	"Krishnagiri",
	"Madurai",
	"Mayiladuthurai",
	"Nagapattinam",
	"Namakkal",
	"Nilgiris",
	"Perambalur",
	"Pudukkottai",
	"Ramanathapuram",
	"Ranipet",
	"Salem",
	"Sivagangai",
	"Tenkasi",
	"Thanjavur",
	"Theni",
	"Thoothukudi",
	"Tiruchirappalli",
	"Tirunelveli",
	"Tirupattur",
	"Tiruppur",
	"Tiruvallur",
	"Tiruvannamalai",
	"Tiruvarur",
	"Vellore",
	"Villupuram",
	"Virudhunagar",
	"Kanyakumari",
}

var districtTaluks = map[string][]string{
	"Ariyalur":        {"Ariyalur", "Sendurai", "Udayarpalayam"},
	"Chengalpattu":    {"Chengalpattu", "Tambaram", "Maduranthakam"},
	"Chennai":         {"Tondiarpet", "Egmore", "Mylapore", "Guindy", "Ambattur"},
	"Coimbatore":      {"Pollachi", "Mettupalayam", "Sulur", "Valparai"},
	"Cuddalore":       {"Cuddalore", "Chidambaram", "Kattumannarkoil"},
	"Dharmapuri":      {"Dharmapuri", "Harur", "Palacode"},
	"Dindigul":        {"Dindigul", "Palani", "Oddanchatram"},
	"Erode":           {"Erode", "Bhavani", "Gobichettipalayam"},
	"Kallakurichi":    {"Kallakurichi", "Ulundurpet", "Sankarapuram"},
	"Kancheepuram":    {"Kancheepuram", "Sriperumbudur", "Uthiramerur"},
	"Karur":           {"Karur", "Kulithalai", "Aravakurichi"},
	"Krishnagiri":     {"Krishnagiri", "Hosur", "Denkanikottai"},
	"Madurai":         {"Thiruparankundram", "Melur", "Usilampatti", "Peraiyur"},
	"Mayiladuthurai":  {"Mayiladuthurai", "Sirkazhi", "Thiruvidaimarudur"},
	"Nagapattinam":    {"Nagapattinam", "Kilvelur", "Thirukkuvalai"},
	"Namakkal":        {"Namakkal", "Rasipuram", "Tiruchengode"},
	"Nilgiris":        {"Ooty", "Coonoor", "Gudalur"},
	"Perambalur":      {"Perambalur", "Kunnam", "Veppanthattai"},
	"Pudukkottai":     {"Pudukkottai", "Aranthangi", "Iluppur"},
	"Ramanathapuram":  {"Ramanathapuram", "Rameswaram", "Paramakudi"},
	"Ranipet":         {"Ranipet", "Arcot", "Walajabad"},
	"Salem":           {"Attur", "Mettur", "Omalur", "Sangagiri"},
	"Sivagangai":      {"Sivagangai", "Karaikudi", "Devakottai"},
	"Tenkasi":         {"Tenkasi", "Sankarankovil", "Kadayanallur"},
	"Thanjavur":       {"Thanjavur", "Pattukkottai", "Kumbakonam"},
	"Theni":           {"Theni", "Periyakulam", "Bodinayakanur"},
	"Thoothukudi":     {"Thoothukudi", "Kovilpatti", "Tiruchendur"},
	"Tiruchirappalli": {"Lalgudi", "Manapparai", "Thottiyam", "Srirangam"},
	"Tirunelveli":     {"Tirunelveli", "Palayamkottai", "Ambasamudram"},
	"Tirupattur":      {"Tirupattur", "Vaniyambadi", "Ambur"},
	"Tiruppur":        {"Tiruppur", "Avinashi", "Palladam"},
	"Tiruvallur":      {"Tiruvallur", "Poonamallee", "Gummidipoondi"},
	"Tiruvannamalai":  {"Tiruvannamalai", "Arni", "Polur"},
	"Tiruvarur":       {"Tiruvarur", "Mannargudi", "Thiruthuraipoondi"},
	"Vellore":         {"Vellore", "Gudiyatham", "Anaicut"},
	"Villupuram":      {"Villupuram", "Tindivanam", "Kallakurichi"},
	"Virudhunagar":    {"Virudhunagar", "Srivilliputhur", "Sivakasi"},
	"Kanyakumari":     {"Nagercoil", "Marthandam", "Kalkulam"},
}

var districtCenters = map[string]models.Coordinates{
	"Ariyalur":        {Lat: 11.1378, Lng: 79.0759, Zoom: DistrictZoom},
	"Chengalpattu":    {Lat: 12.6981, Lng: 79.9896, Zoom: DistrictZoom},
	"Chennai":         {Lat: 13.0827, Lng: 80.2707, Zoom: DistrictZoom},
	"Coimbatore":      {Lat: 11.0168, Lng: 76.9558, Zoom: DistrictZoom},
	"Cuddalore":       {Lat: 11.7447, Lng: 79.768, Zoom: DistrictZoom},
	"Dharmapuri":      {Lat: 12.1271, Lng: 78.155, Zoom: DistrictZoom},
	"Dindigul":        {Lat: 10.3673, Lng: 77.9803, Zoom: DistrictZoom},
	"Erode":           {Lat: 11.3463, Lng: 77.731, Zoom: DistrictZoom},
	"Kallakurichi":    {Lat: 11.7341, Lng: 78.9592, Zoom: DistrictZoom},
	"Kancheepuram":    {Lat: 12.8342, Lng: 79.7036, Zoom: DistrictZoom},
	"Karur":           {Lat: 10.9601, Lng: 78.0767, Zoom: DistrictZoom},
	"Krishnagiri":     {Lat: 12.5186, Lng: 78.2137, Zoom: DistrictZoom},
	"Madurai":         {Lat: 9.9252, Lng: 78.1198, Zoom: DistrictZoom},
	"Mayiladuthurai":  {Lat: 11.1031, Lng: 79.655, Zoom: DistrictZoom},
	"Nagapattinam":    {Lat: 10.7669, Lng: 79.843, Zoom: DistrictZoom},
	"Namakkal":        {Lat: 11.2224, Lng: 78.167, Zoom: DistrictZoom},
	"Nilgiris":        {Lat: 11.3811, Lng: 76.6946, Zoom: DistrictZoom},
	"Perambalur":      {Lat: 11.234, Lng: 78.8762, Zoom: DistrictZoom},
	"Pudukkottai":     {Lat: 10.3803, Lng: 78.8214, Zoom: DistrictZoom},
	"Ramanathapuram":  {Lat: 9.3833, Lng: 78.8333, Zoom: DistrictZoom},
	"Ranipet":         {Lat: 12.9342, Lng: 79.3643, Zoom: DistrictZoom},
	"Salem":           {Lat: 11.6643, Lng: 78.146, Zoom: DistrictZoom},
	"Sivagangai":      {Lat: 9.8432, Lng: 78.4808, Zoom: DistrictZoom},
	"Tenkasi":         {Lat: 8.9544, Lng: 77.3153, Zoom: DistrictZoom},
	"Thanjavur":       {Lat: 10.7852, Lng: 79.1391, Zoom: DistrictZoom},
	"Theni":           {Lat: 10.0104, Lng: 77.4798, Zoom: DistrictZoom},
	"Thoothukudi":     {Lat: 8.7461, Lng: 78.023, Zoom: DistrictZoom},
	"Tiruchirappalli": {Lat: 10.7905, Lng: 78.7047, Zoom: DistrictZoom},
	"Tirunelveli":     {Lat: 8.7139, Lng: 77.7567, Zoom: DistrictZoom},
	"Tirupattur":      {Lat: 12.4974, Lng: 78.5599, Zoom: DistrictZoom},
	"Tiruppur":        {Lat: 11.1085, Lng: 77.3411, Zoom: DistrictZoom},
	"Tiruvallur":      {Lat: 13.1322, Lng: 79.9089, Zoom: DistrictZoom},
	"Tiruvannamalai":  {Lat: 12.2276, Lng: 79.0626, Zoom: DistrictZoom},
	"Tiruvarur":       {Lat: 10.7723, Lng: 79.6368, Zoom: DistrictZoom},
	"Vellore":         {Lat: 12.9165, Lng: 79.1325, Zoom: DistrictZoom},
	"Villupuram":      {Lat: 11.9397, Lng: 79.4921, Zoom: DistrictZoom},
	"Virudhunagar":    {Lat: 9.4731, Lng: 77.958, Zoom: DistrictZoom},
	"Kanyakumari":     {Lat: 8.0863, Lng: 77.5385, Zoom: DistrictZoom},
}

// Districts returns the Tamil Nadu districts in display order
func Districts() []string {
	out := make([]string, len(districts))
	copy(out, districts)
	return out
}

// TaluksForDistrict returns the taluks of a district, or nil for an unmapped district
func TaluksForDistrict(district string) []string {
	taluks, ok := districtTaluks[district]
	if !ok {
		return nil
	}
	out := make([]string, len(taluks))
	copy(out, taluks)
	return out
}

// IsKnownDistrict reports whether the district has a taluk mapping
func IsKnownDistrict(district string) bool {
	_, ok := districtTaluks[district]
	return ok
}

// DistrictCenter returns the map centre for a district, falling back to the
// state view
func DistrictCenter(district string) models.Coordinates {
	if c, ok := districtCenters[district]; ok {
		return c
	}
	return TamilNaduCenter
}
