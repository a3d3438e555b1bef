package config

import (
	"github.com/spf13/viper"
)

// Config corresponds to the top-level structure of config.yaml.
type Config struct {
	Token       string      `mapstructure:"token"`
	Suggestions Suggestions `mapstructure:"suggestions"`
	Commands    Commands    `mapstructure:"commands"`
}

// Suggestions configures where suggestions are posted and how they look.
type Suggestions struct {
	// ChannelID is the channel suggestion messages and the intake panel are
	// posted to.
	ChannelID string `mapstructure:"channel_id"`
	// GuildID is the guild custom vote emoji are resolved from.
	GuildID string `mapstructure:"guild_id"`
	// UpvoteEmoji / DownvoteEmoji name custom guild emoji to use instead of
	// the default 👍/👎. Leave empty for the defaults.
	UpvoteEmoji   string `mapstructure:"upvote_emoji"`
	DownvoteEmoji string `mapstructure:"downvote_emoji"`
	// Timezone is the IANA zone rendered timestamps and admin note stamps
	// use, e.g. "Australia/Brisbane". Empty means UTC.
	Timezone string `mapstructure:"timezone"`
}

// Commands configures where commands are registered and who may administer
// suggestions.
type Commands struct {
	AllowGuilds []string `mapstructure:"allow_guilds"`
	Auth        Auth     `mapstructure:"auth"`
}

// Auth lists the identities allowed to run admin commands.
type Auth struct {
	Developers []string `mapstructure:"developers"`
	AdminRoles []string `mapstructure:"admin_roles"`
}

// Cfg is the loaded configuration.
var Cfg Config

// LoadConfig reads config.yaml from the working directory into Cfg.
func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
