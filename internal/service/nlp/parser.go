// Package nlp — словарный разбор фраз на естественном языке для голосового
// и чат-ботового каналов бронирования. Никаких ML-моделей: детерминированные
// ключевые слова и регулярные выражения с фиксированными оценками уверенности.
package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

var (
	reISODate   = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	reSlashDate = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	reNextDays  = regexp.MustCompile(`next\s+(\d+)\s+days?`)
	reClockTime = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	reAmPmTime  = regexp.MustCompile(`(\d{1,2})\s*(am|pm|a\.m\.|p\.m\.)`)
)

var weekdayOrder = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Parser разбирает свободный текст в структурированный запрос на бронирование
type Parser struct {
	now func() time.Time
}

// NewParser создает парсер с системными часами
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserWithClock создает парсер с внешними часами (для тестов)
func NewParserWithClock(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// DetectIntent распознает намерение пользователя по ключевым словам.
// Порядок проверки важен: фраза "cancel my booking" содержит и
// check-слово "booking", и cancel-слово — booking-слова проверяются первыми.
func (p *Parser) DetectIntent(text string) Intent {
	lower := strings.ToLower(text)

	if containsAny(lower, bookingKeywords) {
		return Intent{Intent: IntentBookService, Confidence: 0.95}
	}
	if containsAny(lower, checkKeywords) {
		return Intent{Intent: IntentCheckBooking, Confidence: 0.90}
	}
	if containsAny(lower, cancelKeywords) {
		return Intent{Intent: IntentCancelBooking, Confidence: 0.88}
	}
	return Intent{Intent: IntentUnknown, Confidence: 0.0}
}

// ExtractVehicle извлекает марку и модель автомобиля
func (p *Parser) ExtractVehicle(text string) (make, model string, confidence float64) {
	lower := strings.ToLower(text)

	for _, key := range makeOrder {
		if !strings.Contains(lower, key) {
			continue
		}
		make = vehicleMakes[key]
		confidence = 0.90

		for _, m := range vehicleModels[key] {
			if strings.Contains(lower, m) {
				model = titleWords(m)
				confidence = 0.95
				break
			}
		}
		break
	}

	if make == "" {
		make = "Unknown"
	}
	if model == "" {
		model = "Unknown"
	}
	return make, model, confidence
}

// ExtractDate извлекает дату визита. Понимает "tomorrow", названия дней
// недели (ближайший будущий), ISO-даты, DD/MM/YYYY и "next N days".
// Без совпадений возвращает сегодняшнюю дату с низкой уверенностью.
func (p *Parser) ExtractDate(text string) (types.DateString, float64) {
	lower := strings.ToLower(text)
	today := p.now()

	if strings.Contains(lower, "tomorrow") {
		return types.NewDateString(today.AddDate(0, 0, 1)), 0.95
	}

	for _, wd := range weekdayOrder {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		daysAhead := int(wd.day-today.Weekday()+7) % 7
		if daysAhead == 0 {
			daysAhead = 7
		}
		return types.NewDateString(today.AddDate(0, 0, daysAhead)), 0.90
	}

	if m := reISODate.FindString(text); m != "" {
		return types.DateString(m), 0.95
	}

	if m := reSlashDate.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		parsed, err := time.Parse(domain.DateFormat,
			fmt.Sprintf("%04d-%02d-%02d", year, month, day))
		if err == nil {
			return types.NewDateString(parsed), 0.92
		}
	}

	if m := reNextDays.FindStringSubmatch(lower); m != nil {
		days, _ := strconv.Atoi(m[1])
		return types.NewDateString(today.AddDate(0, 0, days)), 0.85
	}

	return types.NewDateString(today), 0.5
}

// ExtractTime извлекает время визита, приведенное к одному из рабочих
// слотов. Без совпадений возвращает "10:00" с низкой уверенностью.
func (p *Parser) ExtractTime(text string) (types.TimeString, float64) {
	lower := strings.ToLower(text)

	if m := reClockTime.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		slot := types.TimeString(fmt.Sprintf("%02d:%s", hour, m[2]))
		if domain.IsCanonicalSlot(slot) {
			return slot, 0.95
		}
	}

	if m := reAmPmTime.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		period := m[2]
		if strings.Contains(period, "p") && hour != 12 {
			hour += 12
		} else if strings.Contains(period, "a") && hour == 12 {
			hour = 0
		}
		for _, slot := range domain.CanonicalSlots {
			slotHour, _ := strconv.Atoi(string(slot[:2]))
			if slotHour == hour {
				return slot, 0.90
			}
		}
	}

	switch {
	case strings.Contains(lower, "morning"):
		return "09:00", 0.70
	case strings.Contains(lower, "afternoon"):
		return "14:00", 0.70
	case strings.Contains(lower, "evening"):
		return "16:00", 0.70
	}

	return "10:00", 0.5
}

// ExtractServiceType извлекает тип обслуживания
func (p *Parser) ExtractServiceType(text string) (string, float64) {
	lower := strings.ToLower(text)

	for _, svc := range serviceTypes {
		if strings.Contains(lower, svc) {
			return titleWords(svc), 0.90
		}
	}
	return domain.DefaultServiceType, 0.5
}

// Parse выполняет полный разбор фразы. Для не-booking интентов возвращает
// только распознанное намерение без извлечения сущностей.
func (p *Parser) Parse(text string) ParseResult {
	intent := p.DetectIntent(text)

	if intent.Intent != IntentBookService {
		return ParseResult{
			Success: false,
			Intent:  intent.Intent,
			Message: fmt.Sprintf("Detected intent: %s (confidence: %.0f%%)",
				intent.Intent, intent.Confidence*100),
		}
	}

	vehicleMake, vehicleModel, vehicleConf := p.ExtractVehicle(text)
	date, dateConf := p.ExtractDate(text)
	slot, timeConf := p.ExtractTime(text)
	serviceType, serviceConf := p.ExtractServiceType(text)

	overall := (vehicleConf + dateConf + timeConf + serviceConf) / 4

	return ParseResult{
		Success:           true,
		Intent:            intent.Intent,
		OverallConfidence: overall,
		Extracted: &Extracted{
			VehicleMake:  vehicleMake,
			VehicleModel: vehicleModel,
			Date:         date,
			Time:         slot,
			ServiceType:  serviceType,
		},
		ConfidenceScores: &ConfidenceScores{
			Vehicle: vehicleConf,
			Date:    dateConf,
			Time:    timeConf,
			Service: serviceConf,
		},
		Message: fmt.Sprintf("Parsed successfully! Confidence: %.0f%%", overall*100),
	}
}

// KnownEntities возвращает словари парсера для клиентских подсказок
func (p *Parser) KnownEntities() Entities {
	makes := make([]string, 0, len(makeOrder))
	for _, key := range makeOrder {
		makes = append(makes, vehicleMakes[key])
	}

	models := make(map[string][]string, len(vehicleModels))
	for key, list := range vehicleModels {
		models[vehicleMakes[key]] = append([]string(nil), list...)
	}

	return Entities{
		VehicleMakes:  makes,
		VehicleModels: models,
		ServiceTypes:  append([]string(nil), serviceTypes...),
		TimeSlots:     append([]types.TimeString(nil), domain.CanonicalSlots...),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// titleWords капитализирует каждое слово, считая границей любой не-буквенный
// символ: "wagon-r" -> "Wagon-R", "oil change" -> "Oil Change".
func titleWords(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return b.String()
}
