package catalog

import (
	"encoding/json"
	"log/slog"

	"lunarest.com/app/internal/modules/card"
)

// ToCard maps a catalog row into the card engine's types. Mapping never
// fails hard: unparseable JSON degrades to no options / no assignment and
// the integrity findings are reported through the logger so upstream data
// problems surface without breaking the storefront.
func ToCard(logger *slog.Logger, p Product) card.Product {
	out := card.Product{
		ID:             p.ID,
		Slug:           p.Slug,
		Title:          p.Name,
		Description:    p.Description,
		PriceCents:     p.PriceCents,
		CompareAtCents: p.CompareAtCents,
		Currency:       p.Currency,
		Featured:       p.Featured,
		InStock:        p.Stock > 0,
	}

	for _, im := range p.Images {
		out.Images = append(out.Images, im.URL)
	}

	out.Options = parseOptionDefs(logger, p)
	out.Variants = make([]card.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		out.Variants = append(out.Variants, card.Variant{
			ID:             v.ID,
			Options:        parseVariantOptions(logger, p.ID, v),
			PriceCents:     v.PriceCents,
			CompareAtCents: v.CompareAtCents,
			InStock:        v.Stock > 0,
			ImageURL:       v.ImageURL,
		})
	}

	warnIntegrity(logger, p, out)
	return out
}

func parseOptionDefs(logger *slog.Logger, p Product) []card.Option {
	if len(p.OptionsJSON) == 0 {
		return nil
	}
	var defs []OptionDef
	if err := json.Unmarshal(p.OptionsJSON, &defs); err != nil {
		logger.Warn("catalog_bad_options_json",
			slog.String("product_id", p.ID),
			slog.Any("err", err),
		)
		return nil
	}
	opts := make([]card.Option, 0, len(defs))
	for _, d := range defs {
		if d.Name == "" || len(d.Values) == 0 {
			continue
		}
		opts = append(opts, card.Option{
			Name:     d.Name,
			Values:   d.Values,
			Swatches: d.Swatches,
		})
	}
	return opts
}

func parseVariantOptions(logger *slog.Logger, productID string, v Variant) map[string]string {
	if len(v.OptionsJSON) == 0 {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(v.OptionsJSON, &m); err != nil {
		logger.Warn("catalog_bad_variant_options_json",
			slog.String("product_id", productID),
			slog.String("variant_id", v.ID),
			slog.Any("err", err),
		)
		return map[string]string{}
	}
	return m
}

// warnIntegrity logs catalog faults the card engine compensates for:
// options without any variants, variants missing a declared value, and
// duplicate option assignments (resolution picks the first in order).
func warnIntegrity(logger *slog.Logger, p Product, cp card.Product) {
	if !cp.HasOptions() {
		return
	}
	if len(cp.Variants) == 0 {
		logger.Warn("catalog_options_without_variants",
			slog.String("product_id", p.ID),
			slog.String("slug", p.Slug),
		)
		return
	}

	seen := make(map[string]string, len(cp.Variants))
	for _, v := range cp.Variants {
		key := ""
		complete := true
		for _, opt := range cp.Options {
			val := v.Options[opt.Name]
			if val == "" {
				complete = false
				logger.Warn("catalog_variant_missing_option_value",
					slog.String("product_id", p.ID),
					slog.String("variant_id", v.ID),
					slog.String("option", opt.Name),
				)
				break
			}
			key += opt.Name + "=" + val + ";"
		}
		if !complete {
			continue
		}
		if prev, ok := seen[key]; ok {
			logger.Warn("catalog_duplicate_variant_assignment",
				slog.String("product_id", p.ID),
				slog.String("variant_id", v.ID),
				slog.String("first_variant_id", prev),
			)
			continue
		}
		seen[key] = v.ID
	}
}
