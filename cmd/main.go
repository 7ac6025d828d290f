package main

import (
	"github.com/ana-coahuila/IA-MetaFit/config"
	"github.com/ana-coahuila/IA-MetaFit/routes"
	"github.com/ana-coahuila/IA-MetaFit/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	r := routes.SetupRouter()
	r.Run(":8080")
}
