package stores

import (
	"context"
	"sync"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

// EnrichCart fans out one product-detail fetch per cart entry and fans
// the results back in, preserving entry order. A failed fetch degrades
// that single line to an "unavailable" placeholder with a zero price
// instead of failing the whole cart load.
func EnrichCart(ctx context.Context, client *api.Client, cookie string, entries []models.CartEntry) []models.CartLine {
	if len(entries) == 0 {
		return nil
	}

	lines := make([]models.CartLine, len(entries))
	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry models.CartEntry) {
			defer wg.Done()
			product, err := client.Product(ctx, cookie, entry.ProductID)
			if err != nil {
				lines[i] = placeholderLine(entry)
				return
			}
			lines[i] = models.CartLine{
				ProductID: entry.ProductID,
				Quantity:  entry.Quantity,
				Name:      product.Name,
				Price:     product.Price,
				Image:     product.FirstImage(),
				Stock:     product.Stock,
			}
		}(i, entry)
	}
	wg.Wait()
	return lines
}

func placeholderLine(entry models.CartEntry) models.CartLine {
	return models.CartLine{
		ProductID:   entry.ProductID,
		Quantity:    entry.Quantity,
		Name:        "Product unavailable",
		Price:       0,
		Image:       "/placeholder.jpg",
		Unavailable: true,
	}
}
