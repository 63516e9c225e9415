package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName_LabeledLine(t *testing.T) {
	got := ExtractName("Resume\nName: Anan Prasert\nanan@example.com", "doc.txt")

	assert.Equal(t, "Anan Prasert", got)
}

func TestExtractName_ThaiLabeledLine(t *testing.T) {
	got := ExtractName("ชื่อ: สมชาย ประเสริฐ\nกรุงเทพ", "doc.txt")

	assert.Equal(t, "สมชาย ประเสริฐ", got)
}

func TestExtractName_ShapedLatinLine(t *testing.T) {
	got := ExtractName("Curriculum Vitae\nSomsri Wongchai\nsomsri@example.com", "doc.txt")

	assert.Equal(t, "Somsri Wongchai", got)
}

func TestExtractName_ThaiShapedLine(t *testing.T) {
	got := ExtractName("สมหญิง ใจดี\nโทร ๐๘๑", "doc.txt")

	assert.Equal(t, "สมหญิง ใจดี", got)
}

func TestExtractName_SkipsContactLines(t *testing.T) {
	got := ExtractName("somsri@example.com\n081-234-5678\nSomsri Wongchai", "doc.txt")

	assert.Equal(t, "Somsri Wongchai", got)
}

func TestExtractName_LowercaseLineGetsTitleCased(t *testing.T) {
	got := ExtractName("somsri wongchai\nbangkok", "doc.txt")

	assert.Equal(t, "Somsri Wongchai", got)
}

func TestExtractName_FromEmailLocalPart(t *testing.T) {
	got := ExtractName("RESUME\nsomsri.wongchai@example.com", "doc.txt")

	assert.Equal(t, "Somsri Wongchai", got)
}

func TestExtractName_EmailLocalPartDropsNoiseWords(t *testing.T) {
	got := ExtractName("RESUME\nsomsri.wongchai.resume@example.com", "doc.txt")

	assert.Equal(t, "Somsri Wongchai", got)
}

func TestExtractName_FromFilename(t *testing.T) {
	got := ExtractName("", "somsri_wongchai_resume.pdf")

	assert.Equal(t, "Somsri Wongchai", got)
}

func TestExtractName_FirstShortLineFallback(t *testing.T) {
	got := ExtractName("Experienced barista and team trainer\nContact 081-234-5678 for references", "resume_12345.pdf")

	assert.Equal(t, "Experienced barista and team trainer", got)
}

func TestExtractName_NothingUsable(t *testing.T) {
	got := ExtractName("081-234-5678\n0000000000", "")

	assert.Empty(t, got)
}

func TestExtractName_LabelWinsOverShapedLine(t *testing.T) {
	got := ExtractName("Somsri Wongchai\nName: Anan Prasert", "doc.txt")

	assert.Equal(t, "Anan Prasert", got)
}
