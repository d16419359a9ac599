package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
)

var turkishWeekdays = [...]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"}

// DateContext is the first line of every prompt, e.g. "Bugünün tarihi: 2024-06-12 (Çarşamba)".
func DateContext(today time.Time) string {
	return fmt.Sprintf("Bugünün tarihi: %s (%s)", analytics.FormatDate(today), turkishWeekdays[today.Weekday()])
}

// Grounding instructions. Each one restricts the model to the facts it is given.
const (
	instructLatest      = "Aşağıdaki veritabanı bilgilerine dayanarak kullanıcıya doğal ve kısa bir Türkçe yanıt yaz. Bilgiler dışına çıkma."
	instructSummary     = "Aşağıdaki veritabanı bilgilerini KESIN KAYNAK olarak kullanarak kullanıcı sorusuna Türkçe ve öz bir yanıt yaz. Sadece verilen bilgilere dayan. Gerekirse kritik bilgileri vurgula."
	instructTopItems    = "Aşağıdaki veritabanı bilgilerine dayanarak Türkçe ve öz bir yanıt yaz. Gerekirse kısa çıkarımlar yap, ama uydurma bilgi verme."
	instructMenuGroup   = "Aşağıdaki menü grubu gelir dağılımına dayanarak Türkçe ve öz bir yanıt yaz."
	instructServiceType = "Aşağıdaki servis türü gelirlerine dayanarak Türkçe ve öz bir yanıt yaz."
	instructQueryResult = "Aşağıdaki veritabanı sonuçlarına dayanarak kullanıcıya doğal, kısa ve net bir Türkçe yanıt yaz. Yalnızca verilen sonuçlara dayan. Gerekirse 1-2 cümlelik açıklama ekle."
)

const querySpecSchema = `JSON şeması:
{
  "metric": "sum|avg|count",
  "field": "amount" (sum/avg için zorunlu),
  "groupBy": "none|day|menu_group|service_type|item_name",
  "limit": number (opsiyonel, default=20),
  "range": { "start": "YYYY-MM-DD", "end": "YYYY-MM-DD" } (opsiyonel),
  "filters": { "menu_group"?: string, "item_name"?: string, "service_type"?: string }
}`

// BuildSpecPrompt asks the model for a bare JSON query specification.
func BuildSpecPrompt(dateContext, question string) string {
	var sb strings.Builder
	sb.WriteString(dateContext)
	sb.WriteString("\n\nAşağıdaki kullanıcı sorusunu oku ve aşağıdaki JSON şemasına TAM UYAN, SADECE JSON dönen bir sorgu belirtimi üret. ")
	sb.WriteString("Açıklama yazma, kod bloğu kullanma, sadece JSON yaz. Uydurma alan ekleme. Tarih aralığı belirtilmemişse boş bırak.")
	sb.WriteString("\n\nSoru:\n")
	sb.WriteString(question)
	sb.WriteString("\n\n")
	sb.WriteString(querySpecSchema)
	return sb.String()
}

// BuildGeneralPrompt is the ungrounded prompt: date line, system text, then the transcript.
func BuildGeneralPrompt(dateContext string, messages []Message) string {
	var system []string
	var transcript []string
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			transcript = append(transcript, "Asistan: "+m.Content)
		default:
			transcript = append(transcript, "Kullanıcı: "+m.Content)
		}
	}

	body := strings.Join(transcript, "\n")
	if systemText := strings.Join(system, "\n"); systemText != "" {
		body = systemText + "\n\n" + body
	}
	return dateContext + "\n\n" + body
}
