package bootstrap

import (
	"context"
	"log"

	"ai-bankassist-be/internal/config"
	"ai-bankassist-be/internal/controller"
	"ai-bankassist-be/internal/handler"
	"ai-bankassist-be/internal/pkg/logger"
	"ai-bankassist-be/internal/pkg/mailer"
	"ai-bankassist-be/internal/repository/implementation"
	"ai-bankassist-be/internal/repository/memory"
	"ai-bankassist-be/internal/repository/unitofwork"
	"ai-bankassist-be/internal/service"
	"ai-bankassist-be/internal/websocket"
	"ai-bankassist-be/pkg/agent"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/knowledge"
	"ai-bankassist-be/pkg/llm/factory"
	"ai-bankassist-be/pkg/retrieval"

	pktNats "ai-bankassist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	AccountController    controller.IAccountController
	LoanController       controller.ILoanController
	InvestmentController controller.IInvestmentController
	ChatController       controller.IChatController
	KnowledgeController  controller.IKnowledgeController

	// Chat entry point shared with the websocket route
	ChatService service.IChatService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IEscalationConsumerService

	// WebSockets & Notification
	ChatWsHandler *handler.ChatWsHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Knowledge & Retrieval
	// Probe candidates in order; all failing means degraded mode, where
	// retrieval falls back to lexical matching.
	embedderName, embeddingProvider := embedding.Select([]embedding.Candidate{
		{Name: "openai", Provider: embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.OpenAIBaseURL, cfg.Ai.OpenAIEmbeddingModel)},
		{Name: "minimax", Provider: embedding.NewMiniMaxProvider(cfg.Ai.MiniMaxAPIKey, cfg.Ai.MiniMaxGroup, "embo-01")},
		{Name: "ollama", Provider: embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)},
	})
	if embeddingProvider == nil {
		log.Printf("[WARN] No embedding provider available, knowledge store running degraded")
	} else {
		log.Printf("[INFO] Using Embedding Provider: %s", embedderName)
	}

	docRepo := implementation.NewKnowledgeDocumentRepository(db)
	knowledgeStore := knowledge.NewStore(docRepo, embedderName, embeddingProvider, sysLogger)
	retrievalEngine := retrieval.NewEngine(knowledgeStore, embeddingProvider, sysLogger)

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(factory.ProviderConfig{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		OpenAIAPIKey:  cfg.Ai.OpenAIAPIKey,
		OpenAIBaseURL: cfg.Ai.OpenAIBaseURL,
		MiniMaxAPIKey: cfg.Ai.MiniMaxAPIKey,
		MiniMaxGroup:  cfg.Ai.MiniMaxGroup,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider, using canned replies: %v", err)
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(service.EscalationTopicName, pubSub)
	consumerService := service.NewEscalationConsumerService(
		pubSub,
		service.EscalationTopicName,
		uowFactory,
		emailService,
		cfg.SMTP.AlertRecipient,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, cfg.Auth, natsPub)
	accountService := service.NewAccountService(uowFactory, natsPub)
	loanService := service.NewLoanService(uowFactory)
	investmentService := service.NewInvestmentService(uowFactory)
	knowledgeService := service.NewKnowledgeService(knowledgeStore, retrievalEngine)

	conversationStates := memory.NewConversationStateRepository()
	chatService := service.NewChatService(
		agent.Deps{
			Retriever: retrievalEngine,
			Provider:  llmProvider,
			Accounts:  service.NewAgentAccountReader(uowFactory),
			Logger:    sysLogger,
		},
		conversationStates,
		uowFactory,
		publisherService,
		sysLogger,
	)

	// Escalation fan-out: bus event -> every connected websocket client.
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	chatWsHandler := handler.NewChatWsHandler(chatService, wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		AccountController:    controller.NewAccountController(accountService),
		LoanController:       controller.NewLoanController(loanService),
		InvestmentController: controller.NewInvestmentController(investmentService),
		ChatController:       controller.NewChatController(chatService),
		KnowledgeController:  controller.NewKnowledgeController(knowledgeService),

		ChatService: chatService,

		ConsumerService: consumerService,
		ChatWsHandler:   chatWsHandler,
		WebSocketHub:    wsHub,
	}
}
