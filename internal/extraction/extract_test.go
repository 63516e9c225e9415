package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

var testNow = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

const sampleResume = `Somchai Prasert
somchai.p@example.com | +66 81 234 5678
Bangkok, Thailand

Experience
Data Analyst at Bangkok Insights
2020-01 - 2023-06
• Built dashboards in Power BI
• Wrote SQL reports

Junior Analyst at DataCo
2018-03 - 2019-12
• Cleaned data with Python

Skills
Python, SQL, powerbi

Education
B.Sc. Computer Science, Chulalongkorn University
2014 - 2018`

func TestBuildCandidate_FullDocument(t *testing.T) {
	doc := types.RawDocument{SourceID: "somchai.txt", Text: sampleResume}
	sm := sections.Locate(doc.Text)
	table := skills.Default()

	record := BuildCandidate(doc, sm, table, testNow)

	assert.Equal(t, "somchai.txt", record.SourceID)
	assert.Equal(t, "Somchai Prasert", record.Name)
	assert.Equal(t, "somchai.p@example.com", record.Contacts.Email)
	assert.Equal(t, "+66 81 234 5678", record.Contacts.Phone)
	assert.Equal(t, "Bangkok", record.Contacts.Location)
	assert.Equal(t, "Tech", record.Industry)
	assert.Equal(t, "Data Analyst", record.LastJobTitle)
	assert.InDelta(t, 5.17, record.ExperienceYears, 0.001)

	require.GreaterOrEqual(t, len(record.Skills), 3)
	assert.Equal(t, []string{"Python", "SQL", "Power BI"}, record.Skills[:3])

	require.Len(t, record.Experience, 2)
	assert.Equal(t, "Data Analyst", record.Experience[0].Title)
	assert.Equal(t, "Bangkok Insights", record.Experience[0].Employer)
	assert.Equal(t, "2020-01", record.Experience[0].Start)
	assert.Equal(t, "2023-06", record.Experience[0].End)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "B.Sc.", record.Education[0].Degree)
	assert.Contains(t, record.Education[0].Institution, "University")
	assert.Equal(t, "2014", record.Education[0].Start)
	assert.Equal(t, "2018", record.Education[0].End)

	assert.Empty(t, record.Notes)
}

func TestBuildCandidate_DegradedDocumentGetsNotes(t *testing.T) {
	doc := types.RawDocument{SourceID: "blank.txt", Text: "086-123-4567\n0000000000"}
	sm := sections.Locate(doc.Text)

	record := BuildCandidate(doc, sm, skills.Default(), testNow)

	assert.Empty(t, record.Name)
	assert.Contains(t, record.Notes, "name not found")
	assert.Contains(t, record.Notes, "no skills recognized")
}

func TestBuildCandidate_BlockCountFallbackForYears(t *testing.T) {
	text := `Experience
Cashier at Big Mart

Stock Clerk at Big Mart

Greeter at Big Mart`
	doc := types.RawDocument{SourceID: "nodates.txt", Text: text}
	sm := sections.Locate(text)

	record := BuildCandidate(doc, sm, skills.Default(), testNow)

	assert.InDelta(t, 3.0, record.ExperienceYears, 0.001)
	assert.Contains(t, record.Notes, "experience years estimated from block count; no parsable date spans")
}

func TestExtractContacts(t *testing.T) {
	c := ExtractContacts("Jane Doe\njane@corp.co.th\n+66 2 123 4567\nBangkok")

	assert.Equal(t, "jane@corp.co.th", c.Email)
	assert.Equal(t, "+66 2 123 4567", c.Phone)
	assert.Equal(t, "Bangkok", c.Location)
}

func TestExtractContacts_NothingFound(t *testing.T) {
	c := ExtractContacts("no contact details here")

	assert.Empty(t, c.Email)
	assert.Empty(t, c.Phone)
	assert.Empty(t, c.Location)
}

func TestExtractExperiences_AtDelimiter(t *testing.T) {
	block := "Barista @ Coffee Club\n2021-05 - present\n• Latte art"

	out := ExtractExperiences(block)

	require.Len(t, out, 1)
	assert.Equal(t, "Barista", out[0].Title)
	assert.Equal(t, "Coffee Club", out[0].Employer)
	assert.Equal(t, "2021-05", out[0].Start)
	assert.Equal(t, "present", out[0].End)
	assert.Contains(t, out[0].Bullets, "Latte art")
}

func TestExtractExperiences_DashDelimiterLongerSideIsEmployer(t *testing.T) {
	out := ExtractExperiences("Data Analyst - Bangkok Data Insights Co.")

	require.Len(t, out, 1)
	assert.Equal(t, "Data Analyst", out[0].Title)
	assert.Equal(t, "Bangkok Data Insights Co.", out[0].Employer)
}

func TestExtractExperiences_NoDelimiter(t *testing.T) {
	out := ExtractExperiences("Freelance consulting work\n2019 - 2020")

	require.Len(t, out, 1)
	assert.Empty(t, out[0].Title)
	assert.Empty(t, out[0].Employer)
	assert.Equal(t, "2019", out[0].Start)
	assert.Equal(t, "2020", out[0].End)
}

func TestExtractExperiences_EmptyBlock(t *testing.T) {
	assert.Nil(t, ExtractExperiences(""))
}

func TestExtractEducation(t *testing.T) {
	block := "MBA, Thammasat University\n2016 - 2018\n\nB.Sc. Statistics, Kasetsart University\n2012 - 2016"

	out := ExtractEducation(block)

	require.Len(t, out, 2)
	assert.Equal(t, "MBA", out[0].Degree)
	assert.Contains(t, out[0].Institution, "University")
	assert.Equal(t, "2016", out[0].Start)
	assert.Equal(t, "2018", out[0].End)
	assert.Equal(t, "B.Sc.", out[1].Degree)
}

func TestExtractEducation_EmptyBlock(t *testing.T) {
	assert.Nil(t, ExtractEducation(""))
}
