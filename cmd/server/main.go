package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"

	"cardroom/internal/network"
	"cardroom/internal/services/cluster"
	"cardroom/internal/services/events"
	"cardroom/internal/session"
)

// Config armazena todas as configurações da aplicação, carregadas de
// variáveis de ambiente. Consul e NATS são opcionais: sem endereço
// configurado, o servidor roda sozinho, sem registro nem eventos.
type Config struct {
	ServiceName string `env:"CARDROOM_SERVICE_NAME" envDefault:"cardroom-session"`
	ServicePort int    `env:"CARDROOM_SERVICE_PORT" envDefault:"8080"`
	HealthPort  int    `env:"HEALTH_CHECK_PORT" envDefault:"8080"`
	ConsulAddr  string `env:"CONSUL_HTTP_ADDR"`
	NatsURL     string `env:"NATS_URL"`
}

func main() {
	// 1. CARREGA A CONFIGURAÇÃO
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Fatal: failed to load configuration: %v", err)
	}
	log.Printf("[Main] Configuration loaded: ServiceName=%s, Port=%d, HealthPort=%d, Consul=%q, NATS=%q",
		cfg.ServiceName, cfg.ServicePort, cfg.HealthPort, cfg.ConsulAddr, cfg.NatsURL)

	// 2. BARRAMENTO DE EVENTOS (opcional)
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		var err error
		publisher, err = events.Connect(cfg.NatsURL)
		if err != nil {
			// Eventos são fire-and-forget; um broker fora do ar não impede o
			// servidor de sessões de subir.
			log.Printf("[Main] WARN: NATS unavailable, room events disabled: %v", err)
		} else {
			defer publisher.Close()
		}
	}

	// 3. NÚCLEO DE SESSÕES
	manager := session.NewRoomManager(publisher)
	go manager.Run()

	gameHandler := session.NewGameHandler(manager)
	server := network.NewServer(gameHandler)
	log.Println("[Main] Session core and network server created.")

	// 4. HEALTH CHECK E REGISTRO NO CONSUL (opcional)
	http.HandleFunc("/health", cluster.NewBasicHealthHandler())

	if cfg.ConsulAddr != "" {
		if err := cluster.RegisterServiceInConsul(cfg.ServiceName, cfg.ServicePort, cfg.HealthPort, cfg.ConsulAddr); err != nil {
			log.Fatalf("Fatal: failed to register service in Consul: %v", err)
		}
	}

	// 5. INICIA O SERVIDOR PRINCIPAL
	// Bloqueante: serve as conexões WebSocket (/ws) e o health check (/health).
	address := fmt.Sprintf("0.0.0.0:%d", cfg.ServicePort)
	log.Printf("[Main] Server starting on %s.", address)

	if err := server.Listen(address); err != nil {
		log.Fatalf("Fatal: network server failed: %v", err)
	}
}
