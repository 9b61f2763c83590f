package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stockmarket/notifier/pkg/config"
)

func main() {
	var (
		steps     = flag.Int("steps", 100, "Number of scenarios to send, each is 3 messages")
		delay     = flag.Duration("delay", 100*time.Millisecond, "Delay between scenarios")
		seed      = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
		symbols   = flag.String("symbols", "ACME,GLOBEX,INITECH", "Enterprises to trade (comma-separated)")
		users     = flag.String("users", "alice,bob,carol,dave", "Stockholders placing orders (comma-separated)")
		basePrice = flag.Float64("base-price", 100, "Base price for orders")
		spread    = flag.Float64("price-spread", 10, "Price spread range")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	holders := strings.Split(*users, ",")
	if len(holders) < 2 {
		log.Fatalf("At least two users are needed to trade")
	}

	orders := &kafka.Writer{
		Addr:         kafka.TCP(cfg.OrderKafka.Brokers...),
		Topic:        cfg.OrderKafka.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	defer orders.Close()

	matches := &kafka.Writer{
		Addr:         kafka.TCP(cfg.MatchKafka.Brokers...),
		Topic:        cfg.MatchKafka.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	defer matches.Close()

	ctx := context.Background()
	gen := NewGenerator(*seed, strings.Split(*symbols, ","), holders, *basePrice, *spread)

	log.Printf("Sending %d scenarios to %s and %s", *steps, cfg.OrderKafka.Topic, cfg.MatchKafka.Topic)

	sent := 0
	for i := 0; i < *steps; i++ {
		for _, msg := range gen.Step(time.Now().UTC()) {
			value, err := json.Marshal(msg.Value)
			if err != nil {
				log.Printf("Failed to marshal message %s: %v", msg.Key, err)
				continue
			}

			writer := orders
			if msg.Match {
				writer = matches
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.Key), Value: value}); err != nil {
				log.Printf("Failed to send message %s: %v", msg.Key, err)
				continue
			}
			sent++
		}

		if (i+1)%10 == 0 || i == *steps-1 {
			log.Printf("Sent scenario %d/%d", i+1, *steps)
		}
		if i < *steps-1 {
			time.Sleep(*delay)
		}
	}

	log.Printf("Successfully sent %d messages", sent)
}
