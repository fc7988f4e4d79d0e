package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/binayakjoshi/furever-sub000/api"
	"github.com/binayakjoshi/furever-sub000/external/brevo"
	"github.com/binayakjoshi/furever-sub000/reminder"
	"github.com/binayakjoshi/furever-sub000/schema"
	"github.com/binayakjoshi/furever-sub000/store"
	"github.com/binayakjoshi/furever-sub000/utils"
	"github.com/binayakjoshi/furever-sub000/vets"
)

func initialiseConfig(file string) {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("furever")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("mongo.database", "furever")
	viper.SetDefault("overpass.endpoint", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("reminder.cron", "0 8 * * *")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("i18n.dir", "i18n")

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.WithError(err).Fatal("fail to read config file")
		}
	}

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "config file")
	flag.Parse()

	initialiseConfig(configFile)
	utils.InitI18NBundle()

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.WithError(err).Fatal("fail to ping mongo")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to create mongodb indexes")
	}

	mongoStore := store.NewMongoStore(client, database)

	finder := vets.NewOverpassFinder(viper.GetString("overpass.endpoint"))

	mailer := brevo.New(
		viper.GetString("brevo.endpoint"),
		viper.GetString("brevo.api_key"),
		viper.GetString("brevo.sender_name"),
		viper.GetString("brevo.sender_email"),
	)

	scheduler := reminder.NewScheduler(mongoStore, mailer, viper.GetString("reminder.cron"))
	if err := scheduler.Start(); err != nil {
		log.WithError(err).Fatal("fail to start reminder scheduler")
	}

	server := api.NewServer(mongoStore, finder, scheduler, viper.GetBool("server.trace"))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Info("shutting down")
		scheduler.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("fail to shutdown server")
		}
	}()

	addr := viper.GetString("server.address")
	log.WithField("address", addr).Info("starting furever api server")
	if err := server.Run(addr); err != nil {
		log.WithError(err).Info("server stopped")
	}
}
