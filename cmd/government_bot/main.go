package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"

	"election_governance_system/configs"
	"election_governance_system/internal/db"
	"election_governance_system/internal/db/repositories"
	"election_governance_system/internal/di"
	"election_governance_system/internal/discord_bot"
	"election_governance_system/internal/discord_bot/commands"
	"election_governance_system/internal/services"
)

func main() {
	config, err := configs.LoadGovernmentBotConfig()
	logger := di.NewLogger(config.App, config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	session, err := discordgo.New("Bot " + config.Bot.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	electionRepository := repositories.NewElectionRepository(database)
	nominationRepository := repositories.NewNominationRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	motionRepository := repositories.NewMotionRepository(database)
	motionVoteRepository := repositories.NewMotionVoteRepository(database)
	settingsRepository := repositories.NewSettingsRepository(database)

	notifier := discord_bot.NewNotifier(session, logger)
	policy := discord_bot.NewAccessPolicy(session, logger)

	electionService := services.NewElectionService(
		electionRepository, nominationRepository, voteRepository, settingsRepository,
		policy, notifier, logger,
	)
	ballotService := services.NewBallotService(
		electionRepository, nominationRepository, voteRepository,
		motionRepository, motionVoteRepository, settingsRepository,
		policy, notifier, logger,
	)
	motionService := services.NewMotionService(
		motionRepository, motionVoteRepository, settingsRepository,
		policy, notifier, logger,
	)

	bot := discord_bot.NewBot(
		session,
		[]commands.Command{
			commands.NewSetupCommand(settingsRepository, policy, logger),
			commands.NewStatusCommand(electionRepository, settingsRepository, logger),
			commands.NewOpenElectionCommand(electionService, logger),
			commands.NewCloseElectionCommand(electionService, notifier, logger),
			commands.NewNominateCommand(ballotService, logger),
			commands.NewMotionCreateCommand(motionService, logger),
			commands.NewMotionOpenCommand(motionService, logger),
			commands.NewMotionCloseCommand(motionService, logger),
			commands.NewMotionResultsCommand(motionService, logger),
		},
		[]commands.ComponentHandler{
			commands.NewElectionVoteComponentHandler(ballotService, logger),
			commands.NewMotionVoteComponentHandler(ballotService, logger),
		},
		logger,
	)

	logger.Info("starting bot")
	if err := bot.Start(); err != nil {
		logger.Fatalw("failed to start bot", "error", err)
	}
	logger.Info("bot started")

	scheduler := gocron.NewScheduler(time.UTC)
	_, err = scheduler.Every(config.Scheduler.SweepIntervalSeconds).Seconds().Do(func() {
		promoted, err := electionService.Promote(time.Now().UTC())
		if err != nil {
			logger.Errorw("election sweep failed", "error", err)
			return
		}
		for _, election := range promoted {
			logger.Infow("election promoted to voting",
				"guild", election.Election.GuildID, "position", election.Election.Position,
				"nominees", len(election.Nominees))
		}
	})
	if err != nil {
		logger.Fatalw("failed to schedule election sweep", "error", err)
	}
	scheduler.StartAsync()

	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		if err := http.ListenAndServe(config.Bot.HealthCheckAddr, nil); err != nil {
			logger.Errorw("health check server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	scheduler.Stop()
	if err := bot.Stop(); err != nil {
		logger.Errorw("failed to close discord session", "error", err)
	}
}
