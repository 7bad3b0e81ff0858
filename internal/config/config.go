package config

import (
	"os"
	"strconv"
	"strings"
)

const defaultListenAddr = ":8080"
const defaultChannelID = "BranchApp"
const defaultChannelKey = "BranchLedgerKey001"
const defaultBankCode = "200200"
const defaultTellerSeed = int64(1)

type Config struct {
	ListenAddr      string
	ChannelID       string
	ChannelKey      string
	BankCode        string
	TellerSeed      int64
	RatingsSeedPath string
}

func Load() (Config, error) {
	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	bankCode := strings.TrimSpace(os.Getenv("BANK_CODE"))
	if bankCode == "" {
		bankCode = defaultBankCode
	}

	// An explicit seed keeps teller selection reproducible across runs.
	tellerSeed := defaultTellerSeed
	if raw := strings.TrimSpace(os.Getenv("TELLER_SEED")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, err
		}
		tellerSeed = parsed
	}

	return Config{
		ListenAddr:      listenAddr,
		ChannelID:       channelID,
		ChannelKey:      channelKey,
		BankCode:        bankCode,
		TellerSeed:      tellerSeed,
		RatingsSeedPath: strings.TrimSpace(os.Getenv("RATINGS_SEED_PATH")),
	}, nil
}
