package main

import (
	"context"
	"evently-catalog-backend/config"
	c "evently-catalog-backend/context"
	"evently-catalog-backend/router"
	"flag"
	l "log"

	"github.com/codegangsta/negroni"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultCorrelationID = "00000000.00000000"

var ctx context.Context

func init() {
	ctx = c.SetContextWithValue(context.Background(), c.ContextKeyCorrelationID, defaultCorrelationID)
}

func main() {
	godotenv.Load()

	cfgPath := flag.String("CONFIG_PATH", "./config.yaml", "Path to config file")
	flag.Parse()

	viper.SetConfigFile(*cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		l.Fatalln("error reading config")
	}

	muxRouter := router.Router(ctx)

	n := negroni.New()
	n.UseHandler(muxRouter)
	n.Run(":" + viper.GetString(config.Port))
}
