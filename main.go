package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Kaztic/foodiespot-reservation-agent/agent/booking"
	"github.com/Kaztic/foodiespot-reservation-agent/agent/concierge"
	"github.com/Kaztic/foodiespot-reservation-agent/agent/directory"
	"github.com/Kaztic/foodiespot-reservation-agent/agent/reservation"
	toolx "github.com/Kaztic/foodiespot-reservation-agent/agent/tool"
	configx "github.com/Kaztic/foodiespot-reservation-agent/pkg/config"
	llmx "github.com/Kaztic/foodiespot-reservation-agent/pkg/llm"
	_ "github.com/Kaztic/foodiespot-reservation-agent/pkg/logger/autoload"
)

type AppConfig struct {
	DataFile  string `envconfig:"DATA_FILE" split_words:"true"`
	SessionID string `envconfig:"SESSION_ID" split_words:"true" default:"local"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("FOODIESPOT")
	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")

	if llmx.NewClient(*llmCfg) == nil {
		panic("failed to initialize llm client: api key is missing")
	}

	dir, err := loadDirectory(appCfg.DataFile)
	if err != nil {
		panic(err)
	}
	log.Info().Int("restaurants", dir.Len()).Msg("restaurant directory loaded")

	store := reservation.NewStore()
	mgr, err := booking.NewManager(dir, store)
	if err != nil {
		panic(err)
	}

	chatModel, err := llmCfg.NewChatModel(ctx)
	if err != nil {
		panic(err)
	}

	svc, err := concierge.New(chatModel, toolx.Infos(), toolx.NewGateway(mgr), concierge.Config{})
	if err != nil {
		panic(err)
	}

	runChat(ctx, svc, mgr, appCfg.SessionID)
}

func loadDirectory(dataFile string) (*directory.Directory, error) {
	if strings.TrimSpace(dataFile) != "" {
		return directory.LoadFile(dataFile)
	}
	return directory.Load()
}

func runChat(ctx context.Context, svc *concierge.Service, mgr *booking.Manager, sessionID string) {
	fmt.Println("FoodieSpot reservation assistant. Type 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		reply, err := svc.HandleMessage(ctx, sessionID, line)
		if err != nil {
			log.Error().Err(err).Msg("turn failed")
			fmt.Println("assistant> I'm sorry, I seem to be having a little trouble processing that. Could you try rephrasing?")
			continue
		}
		fmt.Printf("assistant> %s\n", reply)
	}

	if n := len(mgr.Reservations()); n > 0 {
		fmt.Printf("Goodbye! %d reservation(s) made this session.\n", n)
	} else {
		fmt.Println("Goodbye!")
	}
}
