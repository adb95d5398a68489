package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Matchstats API
// @version         0.1.0
// @description     Filtered listing and aggregate statistics over historical match odds.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
