package nidregistry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refTime = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		nid  string
		want error
	}{
		{"empty", "", ErrNIDRequired},
		{"ten digits", "1234567890", nil},
		{"thirteen digits", "1234567890123", nil},
		{"seventeen digits", "12345678901234567", nil},
		{"too short", "123", ErrInvalidFormat},
		{"eleven digits", "12345678901", ErrInvalidFormat},
		{"letters", "12345abcde", ErrInvalidFormat},
		{"trailing newline", "1234567890\n", ErrInvalidFormat},
		{"eighteen digits", "123456789012345678", ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.nid))
		})
	}
}

func TestSeed(t *testing.T) {
	// '1'..'9' = 49..57, '0' = 48
	assert.Equal(t, 525, Seed("1234567890"))
	assert.Equal(t, 0, Seed(""))
}

func TestGenerate_KnownProfile(t *testing.T) {
	p := Generate("1234567890", refTime)

	assert.Equal(t, "1234567890", p.NIDNumber)
	assert.Equal(t, "Mohammad Kabir", p.Name)
	assert.Equal(t, p.Name, p.NameInBangla)
	assert.Equal(t, "female", p.Gender)
	assert.Equal(t, "A+", p.BloodGroup)
	assert.Equal(t, "divorced", p.MaritalStatus)
	assert.Equal(t, "1965-08-14", p.DOB)
	assert.Equal(t, "Shakib Rahman", p.FatherName)
	assert.Equal(t, "Ayesha Kabir", p.MotherName)
	assert.Equal(t, "+88001300001375", p.Phone)
	assert.Equal(t, "mohammad.kabir@example.com", p.Email)
	assert.Equal(t, "House 126, Road 26", p.AddressLine1)
	assert.Equal(t, "Gulshan", p.AddressLine2)
	assert.Equal(t, "Barisal", p.City)
	assert.Equal(t, "Mymensingh", p.State)
	assert.Equal(t, "2425", p.PostalCode)
	assert.Equal(t, "BD", p.Country)
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=1234567890", p.Photo)
	assert.Equal(t, "2021-01-01", p.IssueDate)
	assert.Equal(t, "2031-12-31", p.ExpiryDate)

	assert.Equal(t, Address{
		Division:   "Mymensingh",
		District:   "Barisal",
		Upazila:    "Gulshan",
		PostOffice: "Gulshan",
		PostCode:   "2425",
		Address:    "House 126, Road 26, Gulshan",
	}, p.PresentAddress)
	assert.Equal(t, "2475", p.PermanentAddress.PostCode)
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, nid := range []string{"1234567890", "9876543210123", "19901234567890123"} {
		first, err := json.Marshal(Generate(nid, refTime))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := json.Marshal(Generate(nid, refTime.Add(time.Duration(i)*time.Hour)))
			require.NoError(t, err)
			assert.Equal(t, string(first), string(again), "nid %s", nid)
		}
	}
}

func TestGenerate_AgeWithinRange(t *testing.T) {
	for _, nid := range []string{"0000000000", "9999999999", "5555555555555", "12121212121212121"} {
		p := Generate(nid, refTime)
		dob, err := time.Parse("2006-01-02", p.DOB)
		require.NoError(t, err, p.DOB)

		age := refTime.Year() - dob.Year()
		assert.GreaterOrEqual(t, age, 18)
		assert.LessOrEqual(t, age, 79)
		assert.LessOrEqual(t, dob.Day(), 28)
	}
}

func TestGenerate_PhoneShape(t *testing.T) {
	p := Generate("9999999999999", refTime)
	assert.Len(t, p.Phone, len("+880")+3+8)
	assert.Regexp(t, `^\+88001[3-9]\d{8}$`, p.Phone)
}
