package ai_chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/booking-platform/internal/domain"
)

const systemPromptHeader = `You are a friendly customer service assistant for the business described below.
Answer customer questions using only this information. Keep answers short and polite.
If you do not know the answer, say so and suggest contacting the business directly.
When a customer wants to book, tell them they can book an appointment through this website.`

const notSpecified = "Not specified\n"

// promptData всё, что известно о бизнесе; info может быть nil
type promptData struct {
	provider *domain.Provider
	weekly   []*domain.WeeklySlot
	services []*domain.Service
	info     *domain.BusinessInfo
	faqs     []*domain.FAQ
}

// buildSystemPrompt собирает текстовое описание бизнеса для LLM
func buildSystemPrompt(d promptData) string {
	var sb strings.Builder
	p := d.provider

	sb.WriteString(systemPromptHeader)
	sb.WriteString("\n\nBusiness Information:\n")
	fmt.Fprintf(&sb, "Business Name: %s\n", p.BusinessName)
	writeOptional(&sb, "Description", p.Description)
	writeOptional(&sb, "Phone", p.Phone)
	writeOptional(&sb, "Address", p.Address)
	if d.info != nil {
		writeOptional(&sb, "Location Details", d.info.LocationDetails)
		writeOptional(&sb, "Policies", d.info.Policies)
		writeOptional(&sb, "Additional Information", d.info.OtherInfo)
	}

	sb.WriteString("\nBusiness Hours:\n")
	writeHours(&sb, d.weekly, d.info)

	sb.WriteString("\nAvailable Services:\n")
	if len(d.services) == 0 {
		sb.WriteString(notSpecified)
	}
	for i, s := range d.services {
		fmt.Fprintf(&sb, "%d. %s", i+1, s.Title)
		if s.Description != nil && *s.Description != "" {
			fmt.Fprintf(&sb, " - %s", *s.Description)
		}
		fmt.Fprintf(&sb, " - $%.2f", s.Price)
		if s.DurationMinutes != nil {
			fmt.Fprintf(&sb, " (%d minutes)", *s.DurationMinutes)
		}
		sb.WriteString("\n")
	}

	if len(d.faqs) > 0 {
		sb.WriteString("\nFrequently Asked Questions (FAQs):\n")
		for i, f := range d.faqs {
			fmt.Fprintf(&sb, "%d. Q: %s\n   A: %s\n\n", i+1, f.Question, f.Answer)
		}
	}

	return sb.String()
}

// writeHours недельное расписание, при его отсутствии текст business_hours
func writeHours(sb *strings.Builder, weekly []*domain.WeeklySlot, info *domain.BusinessInfo) {
	hours := groupHours(weekly)
	if len(hours) == 0 {
		if info != nil && info.BusinessHours != nil && *info.BusinessHours != "" {
			sb.WriteString(*info.BusinessHours)
			sb.WriteString("\n")
			return
		}
		sb.WriteString(notSpecified)
		return
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		windows, ok := hours[int(day)]
		if !ok {
			continue
		}
		fmt.Fprintf(sb, "%s: %s\n", day, strings.Join(windows, ", "))
	}
}

func writeOptional(sb *strings.Builder, label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, *value)
}

// groupHours окна работы по дням недели, только доступные
func groupHours(weekly []*domain.WeeklySlot) map[int][]string {
	hours := make(map[int][]string)
	for _, slot := range weekly {
		if !slot.IsAvailable {
			continue
		}
		hours[slot.DayOfWeek] = append(hours[slot.DayOfWeek], fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime))
	}
	return hours
}
