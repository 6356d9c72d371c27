package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-photos/pkg/catalog"
	"github.com/matst80/slask-photos/pkg/common"
	"github.com/matst80/slask-photos/pkg/common/jsoncompat"
	"github.com/matst80/slask-photos/pkg/messaging"
	"github.com/matst80/slask-photos/pkg/prefs"
	"github.com/matst80/slask-photos/pkg/server"
	"github.com/matst80/slask-photos/pkg/storage"
	"github.com/matst80/slask-photos/pkg/tracking"
	"github.com/matst80/slask-photos/pkg/types"
)

var library = "default"
var dataFolder = "data"
var listenAddress = ":8080"

var rabbitUrl = os.Getenv("RABBIT_URL")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var adminSecret = os.Getenv("ADMIN_TOKEN_SECRET")

func init() {
	if l, ok := os.LookupEnv("LIBRARY"); ok {
		library = l
	}
	if d, ok := os.LookupEnv("DATA_FOLDER"); ok {
		dataFolder = d
	}
	if a, ok := os.LookupEnv("LISTEN_ADDRESS"); ok {
		listenAddress = a
	}
}

type app struct {
	catalog  *catalog.Catalog
	storage  *storage.DiskStorage
	sessions *server.SessionStore
	upserts  *common.QueueHandler[types.Photo]
}

func (a *app) connectAmqp(amqpUrl string) *amqp.Connection {
	conn, err := amqp.DialConfig(amqpUrl, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}

	messaging.ListenToTopic(ch, library, messaging.PhotoUpserted, func(d amqp.Delivery) error {
		var photos []types.Photo
		if err := jsoncompat.Unmarshal(d.Body, &photos); err == nil {
			log.Printf("Got photo upserts %d", len(photos))
			a.upserts.Add(photos...)
		} else {
			log.Printf("Failed to unmarshal upsert message %v", err)
		}
		return nil
	})

	removeChannel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(removeChannel, library, messaging.PhotoRemoved, func(d amqp.Delivery) error {
		var ids []types.PhotoId
		if err := jsoncompat.Unmarshal(d.Body, &ids); err == nil {
			log.Printf("Got photo removals %d", len(ids))
			a.catalog.Remove(ids...)
			a.sessions.Refresh()
		} else {
			log.Printf("Failed to unmarshal removal message %v", err)
		}
		return nil
	})

	curationChannel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(curationChannel, library, messaging.CurationChange, func(d amqp.Delivery) error {
		var update messaging.CurationUpdate
		if err := jsoncompat.Unmarshal(d.Body, &update); err != nil {
			log.Printf("Failed to unmarshal curation message %v", err)
			return nil
		}
		for _, p := range a.catalog.Photos() {
			if p.Id == update.Id {
				p.CuratedStatus = update.Status
				a.catalog.Upsert(p)
				a.sessions.Refresh()
				break
			}
		}
		return nil
	})

	log.Printf("Listening for photo changes")
	return conn
}

func main() {
	disk := storage.NewDiskStorage(library, dataFolder)
	photos, err := disk.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d photos", len(photos))

	lib := catalog.NewCatalog()
	lib.SetPhotos(photos)

	var store prefs.Store
	if redisUrl != "" {
		db := 0
		if v := os.Getenv("REDIS_DB"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				db = n
			}
		}
		store = prefs.NewRedisPrefs(redisUrl, redisPassword, db)
	} else {
		store = prefs.NewDiskPrefs(disk)
	}

	a := &app{
		catalog:  lib,
		storage:  disk,
		sessions: server.NewSessionStore(lib, store),
	}
	a.upserts = common.NewQueueHandler(func(photos []types.Photo) {
		a.catalog.Upsert(photos...)
		a.sessions.Refresh()
	}, 500)

	var trk tracking.Tracking
	var conn *amqp.Connection
	if rabbitUrl != "" {
		conn = a.connectAmqp(rabbitUrl)
		rt, err := tracking.NewRabbitTracking(rabbitUrl, library)
		if err != nil {
			log.Printf("Failed to connect tracking: %v", err)
		} else {
			trk = rt
		}
	}
	ws := &server.WebServer{
		Catalog:  lib,
		Sessions: a.sessions,
		Storage:  disk,
		Prefs:    store,
		Tracking: trk,
		Auth:     server.NewTokenAuth(adminSecret),
	}

	mux := http.NewServeMux()
	ws.MakeRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      60 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	srv := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)

	common.RunServerWithShutdown(srv, "photo browser", timeouts.Shutdown, timeouts.Hook,
		func(ctx context.Context) error {
			return disk.SaveCatalog(lib.Photos())
		},
		func(ctx context.Context) error {
			if conn != nil {
				return conn.Close()
			}
			return nil
		},
	)
}
