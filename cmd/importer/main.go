package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/slask-photos/pkg/messaging"
	"github.com/matst80/slask-photos/pkg/storage"
	"github.com/matst80/slask-photos/pkg/types"
)

// importer takes a photo metadata export (a JSON array produced by the
// analysis collaborator), writes it into the library storage and tells
// running browsers about the new records.

var library = "default"
var dataFolder = "data"
var rabbitUrl = os.Getenv("RABBIT_URL")

var inputFile = flag.String("input", "", "photo metadata JSON file")
var replace = flag.Bool("replace", false, "replace the stored catalog instead of appending")

func init() {
	if l, ok := os.LookupEnv("LIBRARY"); ok {
		library = l
	}
	if d, ok := os.LookupEnv("DATA_FOLDER"); ok {
		dataFolder = d
	}
}

func main() {
	flag.Parse()
	if *inputFile == "" {
		log.Fatalf("no input file, use -input")
	}

	b, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *inputFile, err)
	}
	var photos []types.Photo
	if err := json.Unmarshal(b, &photos); err != nil {
		log.Fatalf("Failed to parse %s: %v", *inputFile, err)
	}
	log.Printf("Read %d photos from %s", len(photos), *inputFile)

	disk := storage.NewDiskStorage(library, dataFolder)
	stored := photos
	if !*replace {
		existing, err := disk.LoadCatalog()
		if err != nil {
			log.Fatalf("Failed to load stored catalog: %v", err)
		}
		stored = mergeById(existing, photos)
	}
	if err := disk.SaveCatalog(stored); err != nil {
		log.Fatalf("Failed to save catalog: %v", err)
	}
	log.Printf("Saved %d photos", len(stored))

	if rabbitUrl == "" {
		return
	}
	conn, err := amqp.Dial(rabbitUrl)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	if err := messaging.DefineTopic(ch, library, messaging.PhotoUpserted); err != nil {
		log.Fatalf("Failed to declare topic: %v", err)
	}
	ch.Close()
	if err := messaging.SendChange(conn, library, messaging.PhotoUpserted, photos); err != nil {
		log.Fatalf("Failed to publish upserts: %v", err)
	}
	log.Printf("Published %d upserts", len(photos))
}

func mergeById(existing, updates []types.Photo) []types.Photo {
	ret := make([]types.Photo, len(existing))
	copy(ret, existing)
	for _, p := range updates {
		found := false
		for i := range ret {
			if ret[i].Id == p.Id {
				ret[i] = p
				found = true
				break
			}
		}
		if !found {
			ret = append(ret, p)
		}
	}
	return ret
}
