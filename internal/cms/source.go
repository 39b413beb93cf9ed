// Package cms retrieves site content: pages, services and job postings.
// Content comes either from a directory of YAML files or from a remote CMS
// over HTTP.
package cms

import (
	"context"
	"sort"

	"github.com/schaltkraft/website/internal/content"
)

// Source provides site content. Lookups of unknown slugs return nil, nil.
type Source interface {
	Page(ctx context.Context, slug string) (*content.Page, error)
	Services(ctx context.Context) ([]content.Service, error)
	Service(ctx context.Context, slug string) (*content.Service, error)
	Jobs(ctx context.Context) ([]content.Job, error)
	Job(ctx context.Context, slug string) (*content.Job, error)
}

// sortServices orders services by their order field, then title.
func sortServices(services []content.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].Order != services[j].Order {
			return services[i].Order < services[j].Order
		}
		return services[i].Title < services[j].Title
	})
}

// publishedJobs drops unpublished postings and fills derived fields.
func publishedJobs(jobs []content.Job) []content.Job {
	out := make([]content.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.Published {
			continue
		}
		j.Normalize()
		out = append(out, j)
	}
	return out
}
