package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/logger"

	"github.com/google/generative-ai-go/genai"
	gocache "github.com/patrickmn/go-cache"
	"google.golang.org/api/option"
)

// ErrAIUnavailable is returned when no Gemini API key is configured or
// the upstream call fails; the dashboard degrades instead of breaking.
var ErrAIUnavailable = errors.New("AI recommendations unavailable")

const (
	geminiModel    = "gemini-1.5-flash"
	adviceCacheTTL = 24 * time.Hour

	advicePrompt = `You are a business consultant for companies in Uzbekistan.
Give three concrete, actionable recommendations on how a business of type
%q can benefit from AI and automation. Answer briefly, as a numbered list.`
)

// RecommendationService generates and stores AI business recommendations
// for dashboard users. Responses are cached per (user, business type) so
// repeated requests do not burn API quota.
type RecommendationService struct {
	apiKey string
	cache  *gocache.Cache
}

func NewRecommendationService(apiKey string) *RecommendationService {
	return &RecommendationService{
		apiKey: apiKey,
		cache:  gocache.New(adviceCacheTTL, 10*time.Minute),
	}
}

// GetForUser lists stored recommendations, newest first.
func (s *RecommendationService) GetForUser(userId string) ([]*model.Recommendation, error) {
	db := database.GetDB()
	var recs []*model.Recommendation
	err := db.Model(model.Recommendation{}).
		Where("user_id = ?", userId).
		Order("id desc").
		Find(&recs).
		Error
	return recs, err
}

// Generate produces a recommendation for the user's business type, using
// the 24h cache when possible, and persists the result.
func (s *RecommendationService) Generate(ctx context.Context, userId, businessType string) (*model.Recommendation, error) {
	businessType = strings.TrimSpace(businessType)
	if businessType == "" {
		return nil, errors.New("business type is empty")
	}

	cacheKey := userId + "|" + strings.ToLower(businessType)
	content, cached := s.cachedContent(cacheKey)
	if !cached {
		var err error
		content, err = s.generateContent(ctx, businessType)
		if err != nil {
			return nil, err
		}
		s.cache.Set(cacheKey, content, gocache.DefaultExpiration)
	}

	rec := &model.Recommendation{
		UserId:       userId,
		BusinessType: businessType,
		Content:      content,
	}
	db := database.GetDB()
	if err := db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecommendationService) cachedContent(key string) (string, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return "", false
	}
	content, ok := v.(string)
	return content, ok
}

func (s *RecommendationService) generateContent(ctx context.Context, businessType string) (string, error) {
	if s.apiKey == "" {
		return "", ErrAIUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		logger.Error("gemini client init failed:", err)
		return "", ErrAIUnavailable
	}
	defer client.Close()

	gm := client.GenerativeModel(geminiModel)
	resp, err := gm.GenerateContent(ctx, genai.Text(fmt.Sprintf(advicePrompt, businessType)))
	if err != nil {
		logger.Error("gemini generation failed:", err)
		return "", ErrAIUnavailable
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	if sb.Len() == 0 {
		return "", ErrAIUnavailable
	}
	return sb.String(), nil
}
