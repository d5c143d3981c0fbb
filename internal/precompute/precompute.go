// Command precompute requests the detail payload of every country for each
// layer from the map backend and writes them to static/details/mapid_<layer>.json,
// the bulk files the viewer loads on layer activation.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/fetch"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load(".env")

	backendURL := flag.String("backend", os.Getenv("EEVIEWER_BACKEND"), "map backend URL")
	layers := flag.String("layers", "0,1,2,3,4,5,6", "comma-separated layers to precompute")
	countries := flag.String("countries", "", "comma-separated countries; defaults to those of each layer's map")
	out := flag.String("out", "static/details", "output directory")
	nprocs := flag.Int("workers", 2, "number of concurrent requests")
	retry := flag.Duration("retry", 30*time.Second, "delay between retries of a failed request")
	ttl := flag.Duration("ttl", 24*time.Hour, "lifetime of cached payloads")
	flag.Parse()

	log := logrus.StandardLogger()
	client, err := fetch.NewClient(*backendURL, fetch.WithLogger(log))
	check(err)

	p := &precomputer{
		client: client,
		log:    log,
		ttl:    *ttl,
		backoff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewConstantBackOff(*retry), 5)
		},
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		p.rc = redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASS")})
		defer p.rc.Close()
	}

	ctx := context.Background()
	for _, s := range strings.Split(*layers, ",") {
		layer, err := eeviewer.ParseLayer(strings.TrimSpace(s))
		check(err)
		ids := splitList(*countries)
		if len(ids) == 0 {
			f, err := client.Map(ctx, layer)
			check(err)
			ids = f.Countries
		}
		m := p.run(ctx, layer, ids, *nprocs)
		check(writeDetails(*out, layer, m))
		log.WithFields(logrus.Fields{"layer": layer.ID(), "countries": len(m)}).Info("precompute: wrote details")
	}
}

func splitList(s string) []string {
	var o []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			o = append(o, v)
		}
	}
	return o
}

type query struct {
	i, total int
	layer    eeviewer.Layer
	country  string
}

// precomputer requests detail payloads, retrying transport failures and
// caching results in redis when available.
type precomputer struct {
	client  *fetch.Client
	rc      *redis.Client
	log     logrus.FieldLogger
	ttl     time.Duration
	backoff func() backoff.BackOff

	mu  sync.Mutex
	out map[string]*eeviewer.Payload
}

// cacheKey is the redis key of the payload of country under layer.
func cacheKey(layer eeviewer.Layer, country string) string {
	return fmt.Sprintf("details_%s_%s", layer.ID(), country)
}

// run returns the payloads of countries under layer. Countries whose
// payload cannot be computed are left out.
func (p *precomputer) run(ctx context.Context, layer eeviewer.Layer, countries []string, nprocs int) map[string]*eeviewer.Payload {
	p.out = make(map[string]*eeviewer.Payload)
	if nprocs < 1 {
		nprocs = 1
	}
	c := make(chan query)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for i := 0; i < nprocs; i++ {
		go func() {
			p.runQuery(ctx, c, &wg)
		}()
	}
	for i, id := range countries {
		c <- query{i: i, total: len(countries), layer: layer, country: id}
	}
	close(c)
	wg.Wait()
	return p.out
}

func (p *precomputer) runQuery(ctx context.Context, c chan query, wg *sync.WaitGroup) {
	defer wg.Done()
	for q := range c {
		log := p.log.WithFields(logrus.Fields{"layer": q.layer.ID(), "country": q.country})
		log.Infof("%d/%d", q.i+1, q.total)
		if pl, ok := p.cached(ctx, q); ok {
			p.store(q.country, pl)
			continue
		}
		var pl *eeviewer.Payload
		err := backoff.RetryNotify(
			func() error {
				var err error
				pl, err = p.client.CountryDetail(ctx, q.layer, q.country)
				var ae *eeviewer.ApplicationError
				if errors.As(err, &ae) {
					// The backend has no data for this country.
					log.WithError(err).Warn("precompute: skipping")
					pl = nil
					return nil
				}
				return err
			},
			p.backoff(),
			func(err error, d time.Duration) {
				log.WithError(err).Warnf("retrying in %v", d)
			},
		)
		if err != nil {
			log.WithError(err).Error("precompute: giving up")
			continue
		}
		if pl == nil {
			continue
		}
		p.store(q.country, pl)
		p.cache(ctx, q, pl)
	}
}

func (p *precomputer) store(country string, pl *eeviewer.Payload) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out[country] = pl
}

func (p *precomputer) cached(ctx context.Context, q query) (*eeviewer.Payload, bool) {
	if p.rc == nil {
		return nil, false
	}
	s, err := p.rc.Get(ctx, cacheKey(q.layer, q.country)).Result()
	if err != nil {
		if err != redis.Nil {
			p.log.WithError(err).Debug("precompute: reading cache")
		}
		return nil, false
	}
	pl, err := eeviewer.DecodePayload([]byte(s))
	if err != nil || pl.Kind == eeviewer.KindError {
		return nil, false
	}
	return pl, true
}

func (p *precomputer) cache(ctx context.Context, q query, pl *eeviewer.Payload) {
	if p.rc == nil {
		return
	}
	b, err := json.Marshal(pl)
	if err != nil {
		p.log.WithError(err).Debug("precompute: encoding payload")
		return
	}
	if err := p.rc.Set(ctx, cacheKey(q.layer, q.country), string(b), p.ttl).Err(); err != nil {
		p.log.WithError(err).Debug("precompute: writing cache")
	}
}

// writeDetails writes m to dir/mapid_<layer>.json.
func writeDetails(dir string, layer eeviewer.Layer, m map[string]*eeviewer.Payload) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("precompute: encoding layer %s: %w", layer.ID(), err)
	}
	name := filepath.Join(dir, filepath.Base(fetch.StaticDetailPath(layer)))
	tmp := name + ".tmp"
	if err := ioutil.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, name)
}

func check(err error) {
	if err != nil {
		logrus.Fatal(err)
	}
}
