package bot

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DrunkMunki/Suggester/command"
	"github.com/DrunkMunki/Suggester/config"
	"github.com/DrunkMunki/Suggester/db"
	"github.com/DrunkMunki/Suggester/handler/suggest"
	"github.com/DrunkMunki/Suggester/model"
	"github.com/DrunkMunki/Suggester/vote"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var dg *discordgo.Session

// Start wires the bot together and blocks until interrupted.
func Start(logger *zap.SugaredLogger) {
	err := config.LoadConfig()
	if err != nil {
		logger.Errorw("failed to load config", "error", err)
		return
	}

	// Create a new Discord session using the provided bot token.
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		logger.Errorw("failed to create Discord session", "error", err)
		return
	}

	self, err := dg.User("@me")
	if err != nil {
		logger.Errorw("failed to resolve bot identity", "error", err)
		return
	}

	loc := loadLocation(logger)
	emojis := resolveVoteEmojis(logger)

	store := db.SuggestionStore{}
	messenger := suggest.NewMessenger(dg, config.Cfg.Suggestions.ChannelID, loc)

	suggest.RegisterHandlers(suggest.Deps{
		Reconciler: vote.NewReconciler(store, messenger, emojis, self.ID, logger),
		Status:     vote.NewStatusManager(store, messenger, emojis, self.ID, loc, logger),
		Messenger:  messenger,
		Emojis:     emojis,
		Location:   loc,
	})

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		logger.Errorw("failed to open gateway connection", "error", err)
		return
	}

	for _, guildID := range config.Cfg.Commands.AllowGuilds {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				logger.Fatalw("cannot create command", "command", cmd.Name, "guild_id", guildID, "error", err)
			}
		}
	}

	logger.Info("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}

// loadLocation resolves the configured display timezone, defaulting to UTC.
func loadLocation(logger *zap.SugaredLogger) *time.Location {
	tz := config.Cfg.Suggestions.Timezone
	if tz == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		logger.Warnw("invalid timezone in config, falling back to UTC", "timezone", tz, "error", err)
		return time.UTC
	}
	return loc
}

// resolveVoteEmojis resolves the vote emoji pair once at startup: configured
// custom guild emoji when found, the standard thumbs otherwise. The result is
// immutable and injected wherever votes are read or written.
func resolveVoteEmojis(logger *zap.SugaredLogger) model.VoteEmojis {
	emojis := model.DefaultVoteEmojis()

	cfg := config.Cfg.Suggestions
	if cfg.GuildID == "" || (cfg.UpvoteEmoji == "" && cfg.DownvoteEmoji == "") {
		return emojis
	}

	guildEmojis, err := dg.GuildEmojis(cfg.GuildID)
	if err != nil {
		logger.Warnw("failed to fetch guild emojis, using defaults", "guild_id", cfg.GuildID, "error", err)
		return emojis
	}

	for _, e := range guildEmojis {
		switch e.Name {
		case cfg.UpvoteEmoji:
			emojis.Up = model.VoteEmoji{Name: e.Name, ID: e.ID}
		case cfg.DownvoteEmoji:
			emojis.Down = model.VoteEmoji{Name: e.Name, ID: e.ID}
		}
	}

	logger.Infow("vote emojis resolved", "up", emojis.Up.APIName(), "down", emojis.Down.APIName())
	return emojis
}
