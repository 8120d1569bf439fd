package chat

import (
	"strings"
	"testing"

	"joigo-tour-backend/model"

	"github.com/stretchr/testify/assert"
)

func testAssembler() *ContextAssembler {
	return &ContextAssembler{ExchangeRateVND: 23000}
}

func testMatches() []model.TourMatch {
	return []model.TourMatch{
		{ID: "a", Title: "Tour Hạ Long", Price: 100, Description: "Du thuyền qua đêm trên vịnh.", Similarity: 0.55},
		{ID: "b", Title: "Tour Sapa", Price: 85.5, Description: "Trekking bản Cát Cát.", Similarity: 0.42},
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := testAssembler()
	first := a.Assemble(testMatches(), model.LanguageVI)
	second := a.Assemble(testMatches(), model.LanguageVI)
	assert.Equal(t, first, second)
}

func TestAssembleVietnamese(t *testing.T) {
	got := testAssembler().Assemble(testMatches(), model.LanguageVI)

	assert.Contains(t, got, "DANH SÁCH TOUR LIÊN QUAN:")
	assert.Contains(t, got, "1. Tên: Tour Hạ Long")
	// 100 USD x 23000
	assert.Contains(t, got, "Giá: 2,300,000 VNĐ")
	assert.Contains(t, got, "Độ phù hợp: 55.0%")
	assert.NotContains(t, got, "USD")
}

func TestAssembleEnglish(t *testing.T) {
	got := testAssembler().Assemble(testMatches(), model.LanguageEN)

	assert.Contains(t, got, "RELEVANT TOURS:")
	assert.Contains(t, got, "1. Name: Tour Hạ Long")
	assert.Contains(t, got, "Price: 100 USD")
	assert.Contains(t, got, "Price: 85.5 USD")
	assert.Contains(t, got, "Relevance: 42.0%")
	assert.NotContains(t, got, "VNĐ")
}

func TestAssembleEmptyResults(t *testing.T) {
	a := testAssembler()

	assert.Equal(t,
		"Hiện tại chưa có tour nào phù hợp với yêu cầu của bạn trong hệ thống.",
		a.Assemble(nil, model.LanguageVI))
	assert.Equal(t,
		"There are currently no tours matching your request in our system.",
		a.Assemble(nil, model.LanguageEN))
}

func TestAssembleAppendsPolicyDoc(t *testing.T) {
	a := testAssembler()
	a.PolicyDoc = "Hủy trước 7 ngày hoàn 100% tiền tour."

	got := a.Assemble(nil, model.LanguageVI)
	assert.Contains(t, got, "CHÍNH SÁCH ĐẶT TOUR:\nHủy trước 7 ngày hoàn 100% tiền tour.")

	got = a.Assemble(nil, model.LanguageEN)
	assert.Contains(t, got, "BOOKING POLICY:\nHủy trước 7 ngày hoàn 100% tiền tour.")
}

func TestAssembleTruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("ề", 350)
	matches := []model.TourMatch{{Title: "Tour", Price: 10, Description: long, Similarity: 0.5}}

	got := testAssembler().Assemble(matches, model.LanguageVI)

	assert.Contains(t, got, strings.Repeat("ề", 300)+"...")
	assert.NotContains(t, got, strings.Repeat("ề", 301))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "2,300,000", groupThousands(2300000))
	assert.Equal(t, "-1,234,567", groupThousands(-1234567))
}
