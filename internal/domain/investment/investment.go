package investment

import (
	"strings"
	"time"

	appErrors "FutureYako/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Types string

const (
	Stock Types = "stock"
	UTT   Types = "utt"
	Bond  Types = "bond"
)

// Asset is an investment option listed on the Dar es Salaam Stock Exchange
// or offered by UTT AMIS.
type Asset struct {
	Id          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Type        Types           `json:"type" yaml:"type"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Description string          `json:"description" yaml:"description"`
}

var assets = []Asset{
	{Id: "crdb", Name: "CRDB Bank", Type: Stock, Price: decimal.NewFromInt(640), Description: "Commercial bank listed on the DSE"},
	{Id: "nmb", Name: "NMB Bank", Type: Stock, Price: decimal.NewFromInt(5100), Description: "Retail bank listed on the DSE"},
	{Id: "tbl", Name: "Tanzania Breweries", Type: Stock, Price: decimal.NewFromInt(10900), Description: "Beverage producer listed on the DSE"},
	{Id: "voda", Name: "Vodacom Tanzania", Type: Stock, Price: decimal.NewFromInt(780), Description: "Mobile network operator listed on the DSE"},
	{Id: "utt-umoja", Name: "UTT Umoja Fund", Type: UTT, Price: decimal.RequireFromString("1043.52"), Description: "Balanced collective investment scheme"},
	{Id: "utt-liquid", Name: "UTT Liquid Fund", Type: UTT, Price: decimal.RequireFromString("512.37"), Description: "Money market fund with daily liquidity"},
	{Id: "tbond-10y", Name: "Treasury Bond 10 Years", Type: Bond, Price: decimal.NewFromInt(100000), Description: "Government of Tanzania bond paying semi-annual coupons"},
	{Id: "tbond-15y", Name: "Treasury Bond 15 Years", Type: Bond, Price: decimal.NewFromInt(100000), Description: "Government of Tanzania bond paying semi-annual coupons"},
}

func Assets() []Asset {
	out := make([]Asset, len(assets))
	copy(out, assets)
	return out
}

func AssetsByType(assetType Types) []Asset {
	out := make([]Asset, 0)
	for _, a := range assets {
		if a.Type == assetType {
			out = append(out, a)
		}
	}
	return out
}

func FindAsset(id string) (Asset, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, a := range assets {
		if a.Id == id {
			return a, nil
		}
	}
	return Asset{}, appErrors.ErrAssetNotFound.WithDetails(map[string]interface{}{
		"asset_id": id,
	})
}

type Holding struct {
	Id             ulid.ULID       `json:"id"`
	AssetId        string          `json:"assetId"`
	AssetName      string          `json:"assetName"`
	AssetType      Types           `json:"assetType"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	Units          decimal.Decimal `json:"units"`
	CreatedAt      time.Time       `json:"createdAt"`
}
