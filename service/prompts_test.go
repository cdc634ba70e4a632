package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualificationAnalysisPromptFillsGaps(t *testing.T) {
	p := QualificationAnalysisPrompt("", "", "التعليم الرقمي", "منصة دورات")
	assert.Contains(t, p, "**اسم العميل**: غير محدد")
	assert.Contains(t, p, "**مجال العميل**: التعليم الرقمي")
	assert.Contains(t, p, "**وصف العميل**: منصة دورات")
}

func TestPalettePromptLogoColors(t *testing.T) {
	p := PalettePrompt("أكاديمية", "تعليم", "", []string{"#FF0000", "#00FF00"})
	assert.Contains(t, p, "#FF0000, #00FF00")
	assert.Contains(t, p, "يجب أن تتوافق البالتة المقترحة")

	p = PalettePrompt("أكاديمية", "تعليم", "", nil)
	assert.Contains(t, p, "لا يوجد لوجو حالي")
}

func TestNeedsAnalysisPromptLabelsClientType(t *testing.T) {
	p := NeedsAnalysisPrompt(NeedsAnalysisInput{
		ClientName: "سارة",
		ClientType: "academy",
		Field:      "اللغات",
	})
	assert.Contains(t, p, "- النوع: أكاديمية")
	assert.Contains(t, p, "- المجال: اللغات")
	assert.NotContains(t, p, "الطريقة الحالية")

	// Unknown types pass through untranslated.
	p = NeedsAnalysisPrompt(NeedsAnalysisInput{ClientName: "x", ClientType: "something_else", Field: "f"})
	assert.Contains(t, p, "- النوع: something_else")
}
