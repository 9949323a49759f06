package cluster

import (
	"fmt"
	"log"
	"os"

	consul "github.com/hashicorp/consul/api"
)

// RegisterServiceInConsul registra este nó do servidor de sessões no Consul,
// com um health check HTTP apontando para o endpoint /health do próprio nó.
// O hostname do contêiner entra no ID para que cada réplica seja única.
func RegisterServiceInConsul(serviceName string, servicePort, healthPort int, consulAddr string) error {
	config := consul.DefaultConfig()
	if consulAddr != "" {
		config.Address = consulAddr
	}

	consulClient, err := consul.NewClient(config)
	if err != nil {
		return fmt.Errorf("failed to create consul client: %w", err)
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname, _ = os.Hostname()
	}
	serviceID := fmt.Sprintf("%s-%s", serviceName, hostname)

	registration := &consul.AgentServiceRegistration{
		ID:   serviceID,
		Name: serviceName,
		Port: servicePort,

		Check: &consul.AgentServiceCheck{
			// O hostname do contêiner é resolvível por DNS dentro da rede do
			// compose, então ele serve de host para o check.
			HTTP:     fmt.Sprintf("http://%s:%d/health", hostname, healthPort),
			Timeout:  "5s",
			Interval: "10s",
			// Desregistra a réplica se ela ficar crítica por mais de 1 minuto.
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := consulClient.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register service in consul: %w", err)
	}

	log.Printf("[Cluster] Service '%s' registered in Consul with ID: %s", serviceName, serviceID)
	return nil
}
