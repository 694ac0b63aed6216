package config

import (
	"github.com/spf13/viper"
)

const (
	DBURL = "database.mysql"

	FirebaseProjectID             = "firebase.project_id"
	FirebaseServiceAccountKeyPath = "firebase.service_account_key_path"

	VaultEnabled = "vault.enabled"
	VaultAddress = "vault.address"
	VaultToken   = "vault.token"
	VaultDBPath  = "vault.db_path"

	Port               = "server.port"
	JWTOfflineInterval = "server.jwt_offline_interval"

	RedisAddress  = "redis.address"
	RedisPassword = "redis.password"
	RedisDB       = "redis.db"

	RevalidateChannel = "revalidate.channel"
)

func init() {
	viper.AutomaticEnv()
	viper.SetDefault(Port, "9000")
	viper.SetDefault(JWTOfflineInterval, 120)
	viper.SetDefault(RevalidateChannel, "revalidate")
}
