package ai_chat

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/m04kA/booking-platform/internal/domain"
	businessInfoRepo "github.com/m04kA/booking-platform/internal/infra/storage/businessinfo"
	providerRepo "github.com/m04kA/booking-platform/internal/infra/storage/provider"
	"github.com/m04kA/booking-platform/internal/integrations/llm"
)

// Результаты запроса для метрик
const (
	resultOK          = "ok"
	resultError       = "error"
	resultUnavailable = "unavailable"
)

var stripPolicy = bluemonday.StrictPolicy()

// UseCase use case чата с ассистентом бизнеса
type UseCase struct {
	providerRepo     ProviderRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	businessInfoRepo BusinessInfoRepository
	faqRepo          FAQRepository
	assistant        Assistant
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// assistant и metrics могут быть nil
func NewUseCase(
	providerRepo ProviderRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	businessInfoRepo BusinessInfoRepository,
	faqRepo FAQRepository,
	assistant Assistant,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo:     providerRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		businessInfoRepo: businessInfoRepo,
		faqRepo:          faqRepo,
		assistant:        assistant,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute отвечает на вопрос покупателя о бизнесе провайдера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Бэкенд настроен
	if uc.assistant == nil {
		uc.incMetric("none", resultUnavailable)
		uc.logger.Warn("AIChat: assistant is not configured")
		return nil, ErrAssistantUnavailable
	}

	// 2. Валидация и очистка сообщения
	message := sanitize(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(message) > domain.MaxChatMessageLength {
		return nil, fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, domain.MaxChatMessageLength)
	}

	// 3. Контекст бизнеса
	system, err := uc.businessContext(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	// 4. Диалог: последние реплики истории и новое сообщение
	messages := append(trimHistory(req.History), llm.Message{Role: llm.RoleUser, Content: message})

	reply, err := uc.assistant.Complete(ctx, system, messages)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) || errors.Is(err, llm.ErrRateLimited) {
			uc.incMetric(uc.assistant.Name(), resultUnavailable)
			uc.logger.Warn("AIChat: backend %s unavailable: %v", uc.assistant.Name(), err)
			return nil, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
		}
		uc.incMetric(uc.assistant.Name(), resultError)
		uc.logger.Error("AIChat: backend %s failed for provider=%d: %v", uc.assistant.Name(), req.ProviderID, err)
		return nil, fmt.Errorf("%w: completion: %v", ErrInternal, err)
	}

	uc.incMetric(uc.assistant.Name(), resultOK)
	uc.logger.Info("AIChat: replied for provider=%d, history=%d", req.ProviderID, len(messages)-1)

	return &Response{Reply: reply}, nil
}

func (uc *UseCase) businessContext(ctx context.Context, providerID int64) (string, error) {
	provider, err := uc.providerRepo.GetByUserID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return "", ErrProviderNotFound
		}
		uc.logger.Error("AIChat: failed to get provider=%d: %v", providerID, err)
		return "", fmt.Errorf("%w: get provider: %v", ErrInternal, err)
	}

	weekly, err := uc.availabilityRepo.ListWeekly(ctx, providerID)
	if err != nil {
		uc.logger.Error("AIChat: failed to list weekly availability for provider=%d: %v", providerID, err)
		return "", fmt.Errorf("%w: list weekly: %v", ErrInternal, err)
	}

	services, err := uc.serviceRepo.ListByProvider(ctx, providerID, true)
	if err != nil {
		uc.logger.Error("AIChat: failed to list services for provider=%d: %v", providerID, err)
		return "", fmt.Errorf("%w: list services: %v", ErrInternal, err)
	}

	// Информация о бизнесе необязательна
	info, err := uc.businessInfoRepo.Get(ctx, providerID)
	if err != nil && !errors.Is(err, businessInfoRepo.ErrBusinessInfoNotFound) {
		uc.logger.Error("AIChat: failed to get business info for provider=%d: %v", providerID, err)
		return "", fmt.Errorf("%w: get business info: %v", ErrInternal, err)
	}

	faqs, err := uc.faqRepo.ListByProvider(ctx, providerID, true)
	if err != nil {
		uc.logger.Error("AIChat: failed to list faqs for provider=%d: %v", providerID, err)
		return "", fmt.Errorf("%w: list faqs: %v", ErrInternal, err)
	}

	return buildSystemPrompt(promptData{
		provider: provider,
		weekly:   weekly,
		services: services,
		info:     info,
		faqs:     faqs,
	}), nil
}

func (uc *UseCase) incMetric(backend, result string) {
	if uc.metrics != nil {
		uc.metrics.IncAIRequest(backend, result)
	}
}

// trimHistory оставляет последние domain.MaxChatHistory валидных реплик
func trimHistory(history []HistoryItem) []llm.Message {
	if len(history) > domain.MaxChatHistory {
		history = history[len(history)-domain.MaxChatHistory:]
	}

	out := make([]llm.Message, 0, len(history))
	for _, item := range history {
		role := llm.Role(strings.ToLower(item.Role))
		if role != llm.RoleUser && role != llm.RoleAssistant {
			continue
		}
		content := truncate(sanitize(item.Content), domain.MaxChatMessageLength)
		if content == "" {
			continue
		}
		out = append(out, llm.Message{Role: role, Content: content})
	}
	return out
}

func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
