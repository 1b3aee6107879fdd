package basket

import (
	"encoding/json"
	"sort"

	"gorm.io/datatypes"

	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/store/schema"
)

// NeedFromSchema converts a stored need into its domain representation.
func NeedFromSchema(n *schema.Need) *domain.Need {
	if n == nil {
		return nil
	}

	var images []string
	if len(n.Images) > 0 {
		// Malformed image data degrades to an empty list rather than failing
		// the whole resolution
		_ = json.Unmarshal(n.Images, &images)
	}

	return &domain.Need{
		ID:                n.ID,
		Name:              n.Name,
		Type:              n.Type,
		Description:       n.Description,
		Price:             domain.NewMoneyFromCents(n.PriceCents),
		QuantityNeeded:    n.QuantityNeeded,
		QuantityFulfilled: n.QuantityFulfilled,
		Urgency:           n.Urgency,
		UrgencyImage:      n.Urgency.Image(),
		Images:            images,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

// NeedToSchema converts a domain need into its stored representation.
func NeedToSchema(n *domain.Need) (*schema.Need, error) {
	var images datatypes.JSON
	if len(n.Images) > 0 {
		data, err := json.Marshal(n.Images)
		if err != nil {
			return nil, err
		}
		images = datatypes.JSON(data)
	}

	return &schema.Need{
		ID:                n.ID,
		Name:              n.Name,
		Type:              n.Type,
		Description:       n.Description,
		PriceCents:        n.Price.Cents(),
		QuantityNeeded:    n.QuantityNeeded,
		QuantityFulfilled: n.QuantityFulfilled,
		Urgency:           n.Urgency,
		Images:            images,
	}, nil
}

// ResolveLines joins a raw needId to quantity map against catalog lookups.
// Lines whose need is not in the catalog anymore are returned separately as
// dropped IDs instead of failing the resolution. The resolved lines are
// ordered by need ID.
func ResolveLines(raw map[int64]int64, needs []*schema.Need) (resolved []domain.ResolvedLine, dropped []int64) {
	byID := make(map[int64]*schema.Need, len(needs))
	for _, n := range needs {
		byID[n.ID] = n
	}

	for needID, quantity := range raw {
		n, ok := byID[needID]
		if !ok {
			dropped = append(dropped, needID)
			continue
		}
		resolved = append(resolved, domain.ResolvedLine{
			Need:     NeedFromSchema(n),
			Quantity: quantity,
		})
	}

	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Need.ID < resolved[j].Need.ID })
	sort.Slice(dropped, func(i, j int) bool { return dropped[i] < dropped[j] })
	return resolved, dropped
}

// ComputeTotal sums price times quantity over resolved lines.
func ComputeTotal(lines []domain.ResolvedLine) domain.Money {
	var total domain.Money
	for _, line := range lines {
		total = total.Add(line.Need.Price.Mul(line.Quantity))
	}
	return total
}
