// Package nidregistry ulusal kimlik (NID) sorgusu için deterministik sahte kişi
// profili üretir. Aynı numara her zaman aynı profili verir; rastgelelik kaynağı
// yalnızca numaranın karakter kodlarıdır.
package nidregistry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNIDRequired   = errors.New("NID number is required")
	ErrInvalidFormat = errors.New("Invalid NID format")
)

// 10 haneli akıllı kart, 13 haneli eski NID veya 17 haneli doğum belgesi numarası
var nidPattern = regexp.MustCompile(`^\d{10}$|^\d{13}$|^\d{17}$`)

// Address kayıtlı ikamet / daimi adres bloğudur.
type Address struct {
	Division   string `json:"division"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	PostOffice string `json:"postOffice"`
	PostCode   string `json:"postCode"`
	Address    string `json:"address"`
}

// Profile kimlik kayıt sisteminden dönüyormuş gibi üretilen kişi bilgisidir.
type Profile struct {
	NIDNumber        string  `json:"nidNumber"`
	Name             string  `json:"name"`
	NameInBangla     string  `json:"nameInBangla"`
	DOB              string  `json:"dob"`
	Gender           string  `json:"gender"`
	BloodGroup       string  `json:"bloodGroup"`
	MaritalStatus    string  `json:"maritalStatus"`
	FatherName       string  `json:"fatherName"`
	MotherName       string  `json:"motherName"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	AddressLine1     string  `json:"addressLine1"`
	AddressLine2     string  `json:"addressLine2"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	PostalCode       string  `json:"postalCode"`
	Country          string  `json:"country"`
	PresentAddress   Address `json:"presentAddress"`
	PermanentAddress Address `json:"permanentAddress"`
	Photo            string  `json:"photo"`
	IssueDate        string  `json:"issueDate"`
	ExpiryDate       string  `json:"expiryDate"`
}

var (
	firstNames = []string{
		"Mohammad", "Abdul", "Md", "Ahmed", "Fatima", "Ayesha", "Kamal", "Rahim",
		"Jamal", "Nasrin", "Shakib", "Tasnim", "Rafiq", "Sultana", "Hasan",
	}
	lastNames = []string{
		"Rahman", "Hossain", "Ahmed", "Ali", "Khan", "Islam", "Uddin", "Begum",
		"Chowdhury", "Akter", "Kabir", "Sultana", "Hassan", "Mahmud", "Miah",
	}
	bloodGroups     = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	genders         = []string{"male", "female"}
	maritalStatuses = []string{"single", "married", "divorced", "widowed"}
	cities          = []string{
		"Dhaka", "Chittagong", "Sylhet", "Rajshahi", "Khulna", "Barisal", "Rangpur",
		"Mymensingh", "Comilla", "Narayanganj",
	}
	districts = []string{
		"Dhaka", "Chittagong", "Sylhet", "Rajshahi", "Khulna", "Barisal", "Rangpur",
		"Mymensingh", "Comilla", "Gazipur", "Narayanganj",
	}
	areas         = []string{"Mirpur", "Gulshan", "Banani", "Dhanmondi", "Mohammadpur", "Uttara"}
	phonePrefixes = []string{"017", "018", "019", "016", "015", "013"}
)

// Her alanın seed'e eklenen sabit ofseti
const (
	offFirstName       = 0
	offGender          = 50
	offBloodGroup      = 75
	offLastName        = 100
	offMaritalStatus   = 125
	offCity            = 150
	offDistrict        = 175
	offAge             = 200
	offBirthMonth      = 250
	offBirthDay        = 300
	offFatherFirstName = 400
	offFatherLastName  = 450
	offMotherFirstName = 500
	offMotherLastName  = 550
	offHouseNo         = 600
	offRoadNo          = 650
	offArea            = 700
	offPhonePrefix     = 800
	offPhoneSuffix     = 850
	offPostalCode      = 900
	offPermanentCode   = 950
	offIssueYear       = 1000
	offExpiryYear      = 1100
)

const (
	minAge   = 18
	ageRange = 62
	country  = "BD"
	photoURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="
)

// Validate numaranın 10, 13 veya 17 haneli olup olmadığını kontrol eder.
func Validate(nid string) error {
	if nid == "" {
		return ErrNIDRequired
	}
	if !nidPattern.MatchString(nid) {
		return ErrInvalidFormat
	}
	return nil
}

// Seed numaradaki karakter kodlarının toplamıdır.
func Seed(nid string) int {
	seed := 0
	for _, r := range nid {
		seed += int(r)
	}
	return seed
}

type picker int

// index (seed + offset) mod size değerini verir.
func (p picker) index(size, offset int) int {
	return (int(p) + offset) % size
}

func (p picker) pick(list []string, offset int) string {
	return list[p.index(len(list), offset)]
}

// Generate numaradan deterministik bir profil üretir. now yalnızca yıl için
// kullanılır (doğum, veriliş ve geçerlilik yılları); aynı yıl içinde çıktı sabittir.
// Numara doğrulaması çağırana aittir.
func Generate(nid string, now time.Time) Profile {
	r := picker(Seed(nid))
	year := now.Year()

	firstName := r.pick(firstNames, offFirstName)
	lastName := r.pick(lastNames, offLastName)

	age := minAge + r.index(ageRange, offAge)
	birthMonth := r.index(12, offBirthMonth) + 1
	birthDay := r.index(28, offBirthDay) + 1

	fatherName := r.pick(firstNames, offFatherFirstName) + " " + r.pick(lastNames, offFatherLastName)
	motherName := r.pick(firstNames, offMotherFirstName) + " " + r.pick(lastNames, offMotherLastName)

	houseNo := r.index(500, offHouseNo) + 1
	roadNo := r.index(50, offRoadNo) + 1
	area := r.pick(areas, offArea)
	street := fmt.Sprintf("House %d, Road %d", houseNo, roadNo)

	city := r.pick(cities, offCity)
	district := r.pick(districts, offDistrict)
	postCode := fmt.Sprintf("%d", 1000+r.index(9000, offPostalCode))

	name := firstName + " " + lastName

	return Profile{
		NIDNumber: nid,
		Name:      name,
		// Gerçek kayıtta Bengalce yazılır
		NameInBangla:  name,
		DOB:           fmt.Sprintf("%d-%02d-%02d", year-age, birthMonth, birthDay),
		Gender:        r.pick(genders, offGender),
		BloodGroup:    r.pick(bloodGroups, offBloodGroup),
		MaritalStatus: r.pick(maritalStatuses, offMaritalStatus),
		FatherName:    fatherName,
		MotherName:    motherName,
		Phone:         "+880" + r.pick(phonePrefixes, offPhonePrefix) + fmt.Sprintf("%08d", r.index(10000000, offPhoneSuffix)),
		Email:         strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@example.com",
		AddressLine1:  street,
		AddressLine2:  area,
		City:          city,
		State:         district,
		PostalCode:    postCode,
		Country:       country,
		PresentAddress: Address{
			Division:   district,
			District:   city,
			Upazila:    area,
			PostOffice: area,
			PostCode:   postCode,
			Address:    street + ", " + area,
		},
		PermanentAddress: Address{
			Division:   district,
			District:   city,
			Upazila:    area,
			PostOffice: area,
			PostCode:   fmt.Sprintf("%d", 1000+r.index(9000, offPermanentCode)),
			Address:    street + ", " + area,
		},
		Photo:      photoURL + nid,
		IssueDate:  fmt.Sprintf("%d-01-01", year-r.index(10, offIssueYear)),
		ExpiryDate: fmt.Sprintf("%d-12-31", year+r.index(10, offExpiryYear)),
	}
}
