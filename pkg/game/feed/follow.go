package feed

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Follow fetches the initial map from mapURL and only then runs the event
// subscription, so maps pushed by the server always land after the fetched
// one. A failed fetch is recorded on the sink and the subscription still
// starts.
func (c *Client) Follow(ctx context.Context, httpClient *http.Client, mapURL string) error {
	log := c.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("mapEndpoint", mapURL)

	m, err := FetchMap(ctx, httpClient, mapURL)
	if err != nil {
		log.WithError(err).Error("Fetching map failed")
		c.Sink.SetMapError(err)
	} else {
		log.WithFields(logrus.Fields{"name": m.Name, "width": m.Width, "height": m.Height}).Info("Map loaded")
		c.Sink.SetMap(m)
	}

	if ctx.Err() != nil {
		return nil
	}
	return c.Run(ctx)
}
