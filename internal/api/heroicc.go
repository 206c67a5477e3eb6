package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"time"

	"github.com/valyala/fasthttp"
)

const userAgent = "tcg-gacha/" + constants.APIVersion

type HeroiccClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewHeroiccClient(cfg *config.Config) *HeroiccClient {
	return &HeroiccClient{
		baseURL: strings.TrimRight(cfg.CatalogAPIURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// FetchRelease returns every card of a release, e.g. "bt23".
func (c *HeroiccClient) FetchRelease(ctx context.Context, release string) (*ReleaseResponse, error) {
	u := fmt.Sprintf("%s/releases/en/%s", c.baseURL, url.PathEscape(release))
	return doRequest[ReleaseResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *HeroiccClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(userAgent)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type ReleaseResponse struct {
	Data []HeroiccCard `json:"data"`
}

type HeroiccCard struct {
	ID         string                `json:"id"`
	Attributes HeroiccCardAttributes `json:"attributes"`
}

type HeroiccCardAttributes struct {
	CardNumber      string   `json:"card_number"`
	Name            string   `json:"name"`
	Color           string   `json:"color"`
	Rarity          string   `json:"rarity"`
	Type            string   `json:"type"`
	Level           int      `json:"level"`
	DP              int      `json:"dp"`
	PlayCost        int      `json:"play_cost"`
	DigivolveCost   string   `json:"digivolve_cost"`
	Form            string   `json:"form"`
	Attribute       string   `json:"attribute"`
	TypeTraits      []string `json:"type_traits"`
	MainEffect      string   `json:"main_effect"`
	InheritedEffect string   `json:"inherited_effect"`
	Artist          string   `json:"artist"`
	ImageURL        string   `json:"image_url"`
}

var rarityCodes = map[string]domain.Rarity{
	"c":   domain.RarityCommon,
	"u":   domain.RarityUncommon,
	"r":   domain.RarityRare,
	"sr":  domain.RaritySuperRare,
	"sec": domain.RaritySecretRare,
}

// MapRarity translates the catalog's rarity codes. Unknown codes are lower-cased
// and kept as is.
func MapRarity(code string) domain.Rarity {
	code = strings.ToLower(strings.TrimSpace(code))
	if r, ok := rarityCodes[code]; ok {
		return r
	}
	return domain.Rarity(code)
}

func ImageURL(cardNumber string) string {
	return fmt.Sprintf("https://images.heroi.cc/cards/%s.jpg", strings.ToLower(cardNumber))
}

// MapCard converts a catalog entry into a Card. Empty strings and zero numbers
// become nil; color, type and image fall back to defaults.
func MapCard(c HeroiccCard) domain.Card {
	a := c.Attributes

	card := domain.Card{
		ID:              c.ID,
		CardNumber:      a.CardNumber,
		Name:            a.Name,
		Rarity:          MapRarity(a.Rarity),
		Color:           orDefault(a.Color, domain.DefaultColor),
		Type:            orDefault(a.Type, domain.DefaultType),
		Level:           nonZero(a.Level),
		DP:              nonZero(a.DP),
		PlayCost:        nonZero(a.PlayCost),
		DigivolveCost:   nonEmpty(a.DigivolveCost),
		Form:            nonEmpty(a.Form),
		Attribute:       nonEmpty(a.Attribute),
		TypeTraits:      a.TypeTraits,
		MainEffect:      nonEmpty(a.MainEffect),
		InheritedEffect: nonEmpty(a.InheritedEffect),
		Artist:          nonEmpty(a.Artist),
		ImageURL:        orDefault(a.ImageURL, ImageURL(a.CardNumber)),
	}
	if card.TypeTraits == nil {
		card.TypeTraits = []string{}
	}
	return card
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func nonZero(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
