package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_BasicEnglishHeaders(t *testing.T) {
	text := strings.Join([]string{
		"John Doe",
		"Experience",
		"Analyst at Acme",
		"2019-01 to 2021-01",
		"Education",
		"B.Sc. Statistics, Example University",
		"Skills",
		"Python, SQL",
	}, "\n")

	sm := Locate(text)

	require.Contains(t, sm, KeyExperience)
	require.Contains(t, sm, KeyEducation)
	require.Contains(t, sm, KeySkills)

	assert.Equal(t, "Analyst at Acme\n2019-01 to 2021-01", sm[KeyExperience])
	assert.Equal(t, "B.Sc. Statistics, Example University", sm[KeyEducation])
	assert.Equal(t, "Python, SQL", sm[KeySkills])
}

func TestLocate_ThaiHeaders(t *testing.T) {
	text := "สมชาย ใจดี\nประสบการณ์\nนักวิเคราะห์ข้อมูล\nการศึกษา\nปริญญาตรี มหาวิทยาลัยตัวอย่าง\nทักษะ\nPython, SQL"

	sm := Locate(text)

	assert.Equal(t, "นักวิเคราะห์ข้อมูล", sm[KeyExperience])
	assert.Equal(t, "ปริญญาตรี มหาวิทยาลัยตัวอย่าง", sm[KeyEducation])
	assert.Equal(t, "Python, SQL", sm[KeySkills])
}

func TestLocate_HeaderWithColon(t *testing.T) {
	sm := Locate("Skills:\nPython, SQL")
	assert.Equal(t, "Python, SQL", sm[KeySkills])
}

func TestLocate_MissingSectionsAreAbsentNotError(t *testing.T) {
	sm := Locate("Just a name\nand a sentence with no headers")
	assert.Empty(t, sm)

	sm = Locate("Skills\nPython")
	assert.NotContains(t, sm, KeyExperience)
	assert.NotContains(t, sm, KeyEducation)
	assert.Contains(t, sm, KeySkills)
}

func TestLocate_LastSectionRunsToDocumentEnd(t *testing.T) {
	sm := Locate("Experience\nAcme Co\nline two\nline three")
	assert.Equal(t, "Acme Co\nline two\nline three", sm[KeyExperience])
}

func TestLocate_SpansDoNotOverlap(t *testing.T) {
	text := "Experience\nacme work\nSkills\nPython\nProjects\ndashboard"
	sm := Locate(text)

	assert.NotContains(t, sm[KeyExperience], "Python")
	assert.NotContains(t, sm[KeySkills], "dashboard")
	assert.Equal(t, "dashboard", sm[KeyProjects])
}

func TestLocate_NoMidWordLatinMatch(t *testing.T) {
	// "inexperienced" must not open an experience section.
	sm := Locate("An inexperienced applicant\nSkills\nExcel")
	assert.NotContains(t, sm, KeyExperience)
	assert.Contains(t, sm, KeySkills)
}

func TestLocate_DuplicateHeaderKeepsFirstSpan(t *testing.T) {
	sm := Locate("Skills\nPython\nSkills\nSQL")
	assert.Equal(t, "Python", sm[KeySkills])
}

func TestLocate_Deterministic(t *testing.T) {
	text := "Experience\na\nEducation\nb\nSkills\nc\nProjects\nd"
	first := Locate(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Locate(text))
	}
}
