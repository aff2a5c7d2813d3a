package impl

import (
	"context"
	"log/slog"
	"time"

	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/repository"
	"terraverde/internal/usecase"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	productRepo repository.ProductRepository
	blogRepo    repository.BlogRepository
	serviceRepo repository.ServiceRepository
	eventRepo   repository.EventRepository
	newsRepo    repository.NewsRepository
	logger      *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(
	productRepo repository.ProductRepository,
	blogRepo repository.BlogRepository,
	serviceRepo repository.ServiceRepository,
	eventRepo repository.EventRepository,
	newsRepo repository.NewsRepository,
	logger *slog.Logger,
) usecase.SeedUsecase {
	return &seedService{
		productRepo: productRepo,
		blogRepo:    blogRepo,
		serviceRepo: serviceRepo,
		eventRepo:   eventRepo,
		newsRepo:    newsRepo,
		logger:      logger,
	}
}

// SeedAll populates each empty content family with demo rows. Families that
// already hold rows are left untouched, so repeated runs never duplicate.
func (srv *seedService) SeedAll(ctx context.Context) (*usecase.SeedReport, error) {
	report := &usecase.SeedReport{}

	count, err := srv.seedProducts(ctx)
	if err != nil {
		return nil, err
	}
	report.Products = count

	count, err = srv.seedBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	report.BlogPosts = count

	count, err = srv.seedOfferings(ctx)
	if err != nil {
		return nil, err
	}
	report.Offerings = count

	count, err = srv.seedEvents(ctx)
	if err != nil {
		return nil, err
	}
	report.Events = count

	count, err = srv.seedNews(ctx)
	if err != nil {
		return nil, err
	}
	report.News = count

	srv.logger.Info("seed completed",
		"products", report.Products,
		"blogPosts", report.BlogPosts,
		"offerings", report.Offerings,
		"events", report.Events,
		"news", report.News,
	)

	return report, nil
}

func (srv *seedService) seedProducts(ctx context.Context) (int, error) {
	existing, err := srv.productRepo.List(ctx, true)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to check existing products")
	}
	if len(existing) > 0 {
		return 0, nil
	}

	products := []*entity.Product{
		{
			NamePt:              "Composto orgânico premium",
			NameEn:              "Premium organic compost",
			DescriptionPt:       "Composto rico em nutrientes produzido a partir de resíduos agrícolas locais.",
			DescriptionEn:       "Nutrient-rich compost produced from local agricultural waste.",
			Price:               450,
			Stock:               120,
			SustainabilityScore: 95,
			Category:            "inputs",
			Active:              true,
			Featured:            true,
		},
		{
			NamePt:              "Kit de irrigação gota a gota",
			NameEn:              "Drip irrigation kit",
			DescriptionPt:       "Kit completo para irrigação eficiente de hortas até 500 m².",
			DescriptionEn:       "Complete kit for efficient irrigation of gardens up to 500 m².",
			Price:               3200,
			Stock:               35,
			SustainabilityScore: 88,
			Category:            "equipment",
			Active:              true,
		},
		{
			NamePt:              "Sementes de milho resistentes à seca",
			NameEn:              "Drought-resistant maize seeds",
			DescriptionPt:       "Variedade adaptada às condições do sul de Moçambique, saco de 2 kg.",
			DescriptionEn:       "Variety adapted to southern Mozambique conditions, 2 kg bag.",
			Price:               780,
			Stock:               200,
			SustainabilityScore: 90,
			Category:            "seeds",
			Active:              true,
		},
	}
	for _, product := range products {
		if err := srv.productRepo.Create(ctx, product); err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to seed product")
		}
	}

	return len(products), nil
}

func (srv *seedService) seedBlogPosts(ctx context.Context) (int, error) {
	existing, err := srv.blogRepo.List(ctx, true)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to check existing blog posts")
	}
	if len(existing) > 0 {
		return 0, nil
	}

	posts := []*entity.BlogPost{
		{
			TitlePt:   "Cinco práticas de agricultura regenerativa",
			TitleEn:   "Five regenerative farming practices",
			ExcerptPt: "Como recuperar a fertilidade do solo com técnicas de baixo custo.",
			ExcerptEn: "How to restore soil fertility with low-cost techniques.",
			ContentPt: "A rotação de culturas, a cobertura morta e a compostagem são práticas acessíveis a qualquer produtor.",
			ContentEn: "Crop rotation, mulching and composting are practices within reach of any grower.",
			Category:  "soil",
			Published: true,
		},
		{
			TitlePt:   "Gestão da água em épocas de seca",
			TitleEn:   "Water management during dry seasons",
			ExcerptPt: "Estratégias para manter a produção quando a chuva falha.",
			ExcerptEn: "Strategies to keep producing when the rains fail.",
			ContentPt: "A captação de água da chuva e a irrigação gota a gota reduzem drasticamente o consumo.",
			ContentEn: "Rainwater harvesting and drip irrigation drastically reduce consumption.",
			Category:  "water",
			Published: true,
		},
	}
	for _, post := range posts {
		if err := srv.blogRepo.Create(ctx, post); err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to seed blog post")
		}
	}

	return len(posts), nil
}

func (srv *seedService) seedOfferings(ctx context.Context) (int, error) {
	existing, err := srv.serviceRepo.List(ctx, true)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to check existing offerings")
	}
	if len(existing) > 0 {
		return 0, nil
	}

	offerings := []*entity.ServiceOffering{
		{
			TitlePt:       "Análise de solo",
			TitleEn:       "Soil analysis",
			DescriptionPt: "Análise completa de pH, nutrientes e matéria orgânica com relatório de recomendações.",
			DescriptionEn: "Full pH, nutrient and organic matter analysis with a recommendations report.",
			Price:         1500,
			Duration:      "5 dias",
			Active:        true,
		},
		{
			TitlePt:       "Planeamento de irrigação",
			TitleEn:       "Irrigation planning",
			DescriptionPt: "Desenho de sistema de irrigação adequado à cultura e à fonte de água disponível.",
			DescriptionEn: "Irrigation system design matched to the crop and the available water source.",
			Price:         2500,
			Duration:      "2 semanas",
			Active:        true,
		},
	}
	for _, offering := range offerings {
		if err := srv.serviceRepo.Create(ctx, offering); err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to seed offering")
		}
	}

	return len(offerings), nil
}

func (srv *seedService) seedEvents(ctx context.Context) (int, error) {
	existing, err := srv.eventRepo.List(ctx, true)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to check existing events")
	}
	if len(existing) > 0 {
		return 0, nil
	}

	events := []*entity.Event{
		{
			TitlePt:       "Feira de produtores sustentáveis",
			TitleEn:       "Sustainable growers fair",
			DescriptionPt: "Encontro mensal de produtores e compradores locais.",
			DescriptionEn: "Monthly gathering of local growers and buyers.",
			Location:      "Maputo",
			StartsAt:      time.Now().AddDate(0, 1, 0),
			Status:        entity.EventStatusUpcoming,
		},
		{
			TitlePt:       "Workshop de compostagem",
			TitleEn:       "Composting workshop",
			DescriptionPt: "Formação prática de um dia sobre compostagem doméstica e agrícola.",
			DescriptionEn: "One-day hands-on training on household and farm composting.",
			Location:      "Beira",
			StartsAt:      time.Now().AddDate(0, 2, 0),
			Status:        entity.EventStatusUpcoming,
		},
	}
	for _, event := range events {
		if err := srv.eventRepo.Create(ctx, event); err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to seed event")
		}
	}

	return len(events), nil
}

func (srv *seedService) seedNews(ctx context.Context) (int, error) {
	existing, err := srv.newsRepo.List(ctx, true)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to check existing news")
	}
	if len(existing) > 0 {
		return 0, nil
	}

	entries := []*entity.News{
		{
			TitlePt:   "Plataforma lança entregas na província de Gaza",
			TitleEn:   "Platform launches deliveries in Gaza province",
			ExcerptPt: "A rede de entregas chega a mais três distritos.",
			ExcerptEn: "The delivery network reaches three more districts.",
			ContentPt: "A partir deste mês, encomendas do mercado chegam a Xai-Xai, Chibuto e Chokwé.",
			ContentEn: "Starting this month, marketplace orders reach Xai-Xai, Chibuto and Chokwé.",
			Published: true,
		},
	}
	for _, news := range entries {
		if err := srv.newsRepo.Create(ctx, news); err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to seed news")
		}
	}

	return len(entries), nil
}
