package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stacieblesley-tech/dailyluck/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	valid := registeredProfile()
	assert.NoError(t, valid.Validate())

	var nilProfile *engine.UserProfile
	assert.ErrorIs(t, nilProfile.Validate(), engine.ErrNotRegistered)

	unregistered := registeredProfile()
	unregistered.IsRegistered = false
	assert.ErrorIs(t, unregistered.Validate(), engine.ErrNotRegistered)

	noName := registeredProfile()
	noName.Name = ""
	assert.Error(t, noName.Validate())

	noDate := registeredProfile()
	noDate.BirthDate = time.Time{}
	assert.Error(t, noDate.Validate())
}

func TestParseBirthDate_Formats(t *testing.T) {
	want := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)

	accepted := []string{
		"1995-06-15",
		"19950615",
		"1995-06-15T00:00:00Z",
	}

	for _, value := range accepted {
		got, err := engine.ParseBirthDate(value)
		require.NoErrorf(t, err, "value %q", value)
		assert.Equalf(t, want, got, "value %q", value)
	}
}

func TestParseBirthDate_NormalizesToMidnightUTC(t *testing.T) {
	got, err := engine.ParseBirthDate("1995-06-15T18:30:00Z")
	require.NoError(t, err)

	assert.Equal(t, time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseBirthDate_Rejected(t *testing.T) {
	// Year-less forms are useless here: the zodiac animal needs the year.
	rejected := []string{
		"",
		"--0615",
		"06-15",
		"15/06/1995",
		"생일",
	}

	for _, value := range rejected {
		_, err := engine.ParseBirthDate(value)
		assert.Errorf(t, err, "value %q should not parse", value)
	}
}

// -----------------------------------------------------------------------------
// vCard Import Tests
// -----------------------------------------------------------------------------

func TestImportProfile_FirstCardWithBirthDate(t *testing.T) {
	// The first card has no BDAY and must be skipped.
	stream := `BEGIN:VCARD
VERSION:4.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:홍길동
BDAY:19950615
END:VCARD`

	profile, err := engine.ImportProfile(strings.NewReader(stream))
	require.NoError(t, err)

	assert.Equal(t, "홍길동", profile.Name)
	assert.Equal(t, time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), profile.BirthDate)
	assert.False(t, profile.IsRegistered, "import alone does not complete registration")
}

func TestImportProfile_SkipsUnparseableBirthDate(t *testing.T) {
	stream := `BEGIN:VCARD
VERSION:4.0
FN:Partial Date
BDAY:--0615
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Jane Doe
BDAY:1990-01-01
END:VCARD`

	profile, err := engine.ImportProfile(strings.NewReader(stream))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
}

func TestImportProfile_NoUsableCard(t *testing.T) {
	stream := `BEGIN:VCARD
VERSION:4.0
FN:No Birthday
END:VCARD`

	profile, err := engine.ImportProfile(strings.NewReader(stream))
	assert.Nil(t, profile)
	assert.Error(t, err)
}
