package chat

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"joigo-tour-backend/model"
)

const maxDescriptionRunes = 300

// ContextAssembler 把检索结果拼成上下文文本块。纯格式化，无任何 I/O，
// 相同输入必须产出逐字节相同的输出。
type ContextAssembler struct {
	// USD -> VND 固定汇率
	ExchangeRateVND float64

	// 预订政策等静态参考文档，为空则不附加
	PolicyDoc string
}

func (a *ContextAssembler) Assemble(results []model.TourMatch, language string) string {
	var b strings.Builder

	if len(results) == 0 {
		if language == model.LanguageEN {
			b.WriteString("There are currently no tours matching your request in our system.")
		} else {
			b.WriteString("Hiện tại chưa có tour nào phù hợp với yêu cầu của bạn trong hệ thống.")
		}
	} else {
		if language == model.LanguageEN {
			b.WriteString("RELEVANT TOURS:\n\n")
		} else {
			b.WriteString("DANH SÁCH TOUR LIÊN QUAN:\n\n")
		}

		for i, tour := range results {
			if language == model.LanguageEN {
				fmt.Fprintf(&b, "%d. Name: %s\n", i+1, tour.Title)
				fmt.Fprintf(&b, "   Price: %s\n", a.formatPrice(tour.Price, language))
				fmt.Fprintf(&b, "   Description: %s\n", truncateRunes(tour.Description, maxDescriptionRunes))
				fmt.Fprintf(&b, "   Relevance: %.1f%%\n", tour.Similarity*100)
			} else {
				fmt.Fprintf(&b, "%d. Tên: %s\n", i+1, tour.Title)
				fmt.Fprintf(&b, "   Giá: %s\n", a.formatPrice(tour.Price, language))
				fmt.Fprintf(&b, "   Mô tả: %s\n", truncateRunes(tour.Description, maxDescriptionRunes))
				fmt.Fprintf(&b, "   Độ phù hợp: %.1f%%\n", tour.Similarity*100)
			}
			b.WriteString("\n")
		}
	}

	if a.PolicyDoc != "" {
		if language == model.LanguageEN {
			b.WriteString("\nBOOKING POLICY:\n")
		} else {
			b.WriteString("\nCHÍNH SÁCH ĐẶT TOUR:\n")
		}
		b.WriteString(a.PolicyDoc)
	}

	return b.String()
}

// formatPrice 价格以 USD 存储；VI 按固定汇率换算为 VND。
// 输出始终带货币单位后缀。
func (a *ContextAssembler) formatPrice(priceUSD float64, language string) string {
	if language == model.LanguageEN {
		return strconv.FormatFloat(priceUSD, 'f', -1, 64) + " USD"
	}

	vnd := int64(math.Round(priceUSD * a.ExchangeRateVND))
	return groupThousands(vnd) + " VNĐ"
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
