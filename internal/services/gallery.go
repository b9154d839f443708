package services

import (
	"context"
	"sync"

	"github.com/sbilibin2017/lnbits-gallery/internal/facades"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
)

// ImageSearcher lists the gallery folder at the media host and renders
// per-image previews.
type ImageSearcher interface {
	SearchImages(ctx context.Context) ([]facades.Resource, error)
	FetchBlurPlaceholder(ctx context.Context, publicID, format string) (string, error)
	ImageURL(publicID, format string) string
}

// PaywallBatchReader resolves paywall records for a whole listing page in
// one query.
type PaywallBatchReader interface {
	GetByPublicIDs(ctx context.Context, publicIDs []string) (map[string]models.PaywallDB, error)
}

// BlurCache caches blur placeholders between listings.
type BlurCache interface {
	Get(ctx context.Context, publicID string) (string, error)
	Set(ctx context.Context, publicID, dataURL string) error
}

// GalleryService assembles the image listing: media host search, paywall
// annotation, blur placeholders.
type GalleryService struct {
	searcher ImageSearcher
	paywalls PaywallBatchReader
	cache    BlurCache
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(searcher ImageSearcher, paywalls PaywallBatchReader, cache BlurCache) *GalleryService {
	return &GalleryService{
		searcher: searcher,
		paywalls: paywalls,
		cache:    cache,
	}
}

// ListImages returns the gallery in the media host's order (public_id
// descending), each image annotated with its paywall record and blur
// placeholder. There is no partial result: any upstream failure fails the
// whole listing.
func (svc *GalleryService) ListImages(ctx context.Context) ([]models.Image, error) {
	resources, err := svc.searcher.SearchImages(ctx)
	if err != nil {
		logger.Log.Errorw("media search failed", "err", err)
		return nil, err
	}

	publicIDs := make([]string, len(resources))
	for i, res := range resources {
		publicIDs[i] = res.PublicID
	}

	paywallsByID, err := svc.paywalls.GetByPublicIDs(ctx, publicIDs)
	if err != nil {
		logger.Log.Errorw("paywall lookup failed", "err", err)
		return nil, err
	}

	images := make([]models.Image, len(resources))
	for i, res := range resources {
		img := models.Image{
			ID:          i,
			PublicID:    res.PublicID,
			Width:       res.Width,
			Height:      res.Height,
			Format:      res.Format,
			DisplayName: res.DisplayName,
			URL:         svc.searcher.ImageURL(res.PublicID, res.Format),
		}
		if record, ok := paywallsByID[res.PublicID]; ok {
			img.Paywall = true
			img.PaywallURL = record.PaywallURL
		}
		images[i] = img
	}

	blurs, err := svc.fetchBlurPlaceholders(ctx, resources)
	if err != nil {
		return nil, err
	}
	for i := range images {
		images[i].BlurDataURL = blurs[i]
	}

	return images, nil
}

// fetchBlurPlaceholders resolves placeholders for all resources at once:
// one goroutine per image, all joined before the listing is assembled.
// Results are re-associated to images by position.
func (svc *GalleryService) fetchBlurPlaceholders(ctx context.Context, resources []facades.Resource) ([]string, error) {
	blurs := make([]string, len(resources))
	errs := make([]error, len(resources))

	var wg sync.WaitGroup
	for i, res := range resources {
		wg.Add(1)
		go func(i int, res facades.Resource) {
			defer wg.Done()

			if svc.cache != nil {
				if cached, err := svc.cache.Get(ctx, res.PublicID); err == nil {
					blurs[i] = cached
					return
				}
			}

			dataURL, err := svc.searcher.FetchBlurPlaceholder(ctx, res.PublicID, res.Format)
			if err != nil {
				errs[i] = err
				return
			}
			blurs[i] = dataURL

			if svc.cache != nil {
				if err := svc.cache.Set(ctx, res.PublicID, dataURL); err != nil {
					logger.Log.Warnw("failed to cache blur placeholder", "public_id", res.PublicID, "err", err)
				}
			}
		}(i, res)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			logger.Log.Errorw("blur placeholder failed", "public_id", resources[i].PublicID, "err", err)
			return nil, err
		}
	}

	return blurs, nil
}
