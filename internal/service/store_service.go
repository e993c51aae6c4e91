package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

// StoreService операции продавца вне пути резервирования: создание магазина,
// каталог (add_book, add_stock_level) и поиск по каталогу.
type StoreService struct {
	uow       uow.UOW
	storeRepo StoreRepository
	bookRepo  BookRepository
	userRepo  UserRepository
}

func NewStoreService(u uow.UOW) (*StoreService, error) {
	storeRepo, storeErr := uow.GetRepositoryAs[StoreRepository](u, uow.RepositoryName(repoargs.StoreRepoName))
	if storeErr != nil {
		return nil, storeErr
	}
	bookRepo, bookErr := uow.GetRepositoryAs[BookRepository](u, uow.RepositoryName(repoargs.BookRepoName))
	if bookErr != nil {
		return nil, bookErr
	}
	userRepo, userErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userErr != nil {
		return nil, userErr
	}
	return &StoreService{
		uow:       u,
		storeRepo: storeRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
	}, nil
}

// CreateStore создает магазин с владельцем userID. Повторный store_id -
// domain.ErrDuplicateKey.
func (s *StoreService) CreateStore(ctx context.Context, userID, storeID string) (*domain.Store, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	store, createErr := s.storeRepo.CreateStore(ctx, storeID, userID)
	if createErr != nil {
		return nil, fmt.Errorf("creating store: %w", createErr)
	}
	return store, nil
}

type AddBookArgs struct {
	UserID     string
	StoreID    string
	BookID     string
	Title      string
	Author     string
	Publisher  string
	BookIntro  string
	Content    string
	Tags       []string
	Price      int64
	StockLevel int64
}

// AddBook выставляет книгу в магазине. Книга уникальна в рамках пары
// (book_id, store_id): та же книга в другом магазине - независимая запись.
func (s *StoreService) AddBook(ctx context.Context, args AddBookArgs) (*domain.Book, error) {
	if _, err := s.userRepo.FindUserByID(ctx, args.UserID); err != nil {
		return nil, fmt.Errorf("adding book: %w", err)
	}
	if _, err := s.storeRepo.FindStoreByID(ctx, args.StoreID); err != nil {
		return nil, fmt.Errorf("adding book: %w", err)
	}

	book, createErr := s.bookRepo.CreateBook(ctx, repoargs.CreateBook{
		BookID:     args.BookID,
		StoreID:    args.StoreID,
		Title:      args.Title,
		Author:     args.Author,
		Publisher:  args.Publisher,
		BookIntro:  args.BookIntro,
		Content:    args.Content,
		Tags:       args.Tags,
		Price:      args.Price,
		StockLevel: args.StockLevel,
	})
	if createErr != nil {
		return nil, fmt.Errorf("adding book: %w", createErr)
	}
	return book, nil
}

// AddStockLevel пополняет остаток книги вне пути резервирования.
func (s *StoreService) AddStockLevel(ctx context.Context, userID, storeID, bookID string, add int64) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("adding stock level: %w", err)
	}
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		return fmt.Errorf("adding stock level: %w", err)
	}

	applied, incErr := s.bookRepo.IncrementStock(ctx, storeID, bookID, add)
	if incErr != nil {
		return fmt.Errorf("adding stock level: %w", incErr)
	}
	if !applied {
		return fmt.Errorf("adding stock level: book `%s`: %w", bookID, domain.ErrRecordNotFound)
	}
	return nil
}

// Search полнотекстовый поиск по каталогу; пустой storeID - глобально.
func (s *StoreService) Search(ctx context.Context, keyword, storeID string, page, limit uint) ([]domain.Book, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	books, err := s.bookRepo.Search(ctx, repoargs.SearchBooks{
		Keyword: keyword,
		StoreID: storeID,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return books, nil
}
