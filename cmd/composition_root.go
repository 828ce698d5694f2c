package cmd

import (
	"log/slog"
	"strconv"

	"storefront/internal/adapters/out/identity"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/mailrelay"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

const (
	defaultDispatchBatchSize   = 50
	defaultDispatchMaxAttempts = 5
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	mailer     *mailrelay.Client
	publisher  *kafka.StatusChangedPublisher
	resolver   *identity.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(configs.AllowCustomerCancellation == "true"),
		mailer:     mailrelay.NewClient(configs.MailRelayURL),
		publisher:  kafka.NewStatusChangedPublisher([]string{configs.KafkaHost}, configs.KafkaOrderChangedTopic),
		resolver:   identity.NewClient(configs.IdentityServiceURL),
	}
}

func (c *CompositionRoot) CreateIdentityResolver() ports.IdentityResolver {
	return c.resolver
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.configs.FactoryGroupEmail)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.policy, c.configs.FactoryGroupEmail)
}

func (c *CompositionRoot) CreatePostMessageCommandHandler() commands.PostMessageCommandHandler {
	var f commands.MessageUoWFactory = FuncMessageUoWFactory(func() commands.MessageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostMessageCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler(logger *slog.Logger) commands.DispatchNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationsCommandHandler(
		f,
		c.mailer,
		c.publisher,
		logger,
		intConfig(c.configs.DispatchBatchSize, defaultDispatchBatchSize),
		intConfig(c.configs.DispatchMaxAttempts, defaultDispatchMaxAttempts),
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListMessagesQueryHandler() queries.ListMessagesQueryHandler {
	return queries.NewListMessagesQueryHandler(c.gormDB, c.policy)
}

// Close releases adapters holding connections.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func intConfig(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMessageUoWFactory func() commands.MessageUoW

func (f FuncMessageUoWFactory) Create() commands.MessageUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
