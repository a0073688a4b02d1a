package youtube

import (
	"context"
	"fmt"
	"time"

	"github.com/Krijovnick/ai-news/internal/model"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// Video is a search hit reduced to what the adapter needs.
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	PublishedAt  string
}

// API is the subset of the YouTube Data API used by Source.
type API interface {
	Search(ctx context.Context, query string, publishedAfter time.Time, maxResults int64) ([]Video, error)
	Durations(ctx context.Context, ids []string) (map[string]int, error)
	Channel(ctx context.Context, id string) (model.ChannelInfo, bool, error)
}

type serviceAPI struct {
	svc *yt.Service
}

// NewAPI builds a Data API v3 client authenticated with an API key.
func NewAPI(ctx context.Context, apiKey string, opts ...option.ClientOption) (API, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: new service: %w", err)
	}
	return &serviceAPI{svc: svc}, nil
}

func (a *serviceAPI) Search(ctx context.Context, query string, publishedAfter time.Time, maxResults int64) ([]Video, error) {
	resp, err := a.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("date").
		PublishedAfter(publishedAfter.UTC().Format("2006-01-02T15:04:05.000Z")).
		MaxResults(maxResults).
		RegionCode("US").
		RelevanceLanguage("en").
		SafeSearch("moderate").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	out := make([]Video, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Id == nil || it.Snippet == nil || it.Id.VideoId == "" {
			continue
		}
		out = append(out, Video{
			ID:           it.Id.VideoId,
			Title:        it.Snippet.Title,
			Description:  it.Snippet.Description,
			ChannelID:    it.Snippet.ChannelId,
			ChannelTitle: it.Snippet.ChannelTitle,
			PublishedAt:  it.Snippet.PublishedAt,
		})
	}
	return out, nil
}

func (a *serviceAPI) Durations(ctx context.Context, ids []string) (map[string]int, error) {
	out := make(map[string]int, len(ids))
	for start := 0; start < len(ids); start += 50 {
		end := min(start+50, len(ids))
		resp, err := a.svc.Videos.List([]string{"contentDetails"}).Id(ids[start:end]...).Context(ctx).Do()
		if err != nil {
			return nil, err
		}
		for _, v := range resp.Items {
			if v.ContentDetails == nil {
				continue
			}
			out[v.Id] = ParseDuration(v.ContentDetails.Duration)
		}
	}
	return out, nil
}

func (a *serviceAPI) Channel(ctx context.Context, id string) (model.ChannelInfo, bool, error) {
	resp, err := a.svc.Channels.List([]string{"snippet"}).Id(id).Context(ctx).Do()
	if err != nil {
		return model.ChannelInfo{}, false, err
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return model.ChannelInfo{}, false, nil
	}
	sn := resp.Items[0].Snippet
	return model.ChannelInfo{
		ID:              id,
		Title:           sn.Title,
		Description:     sn.Description,
		Country:         sn.Country,
		DefaultLanguage: sn.DefaultLanguage,
	}, true, nil
}
