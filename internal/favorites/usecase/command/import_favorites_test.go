package command

import (
	"context"
	"os"
	"testing"

	"github.com/bookmyseva/storefront/internal/favorites/domain"
	"github.com/bookmyseva/storefront/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("favorites-command-test", false)
	os.Exit(m.Run())
}

type fakeFavoriteRepo struct {
	lists map[string][]domain.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{lists: make(map[string][]domain.Favorite)}
}

func (r *fakeFavoriteRepo) List(customerID string) ([]domain.Favorite, error) {
	return r.lists[customerID], nil
}

func (r *fakeFavoriteRepo) Add(favorite *domain.Favorite) error {
	for _, f := range r.lists[favorite.CustomerID] {
		if f.ItemID == favorite.ItemID {
			return nil
		}
	}
	r.lists[favorite.CustomerID] = append(r.lists[favorite.CustomerID], *favorite)
	return nil
}

func (r *fakeFavoriteRepo) Remove(customerID, itemID string) error {
	list := r.lists[customerID]
	for i, f := range list {
		if f.ItemID == itemID {
			r.lists[customerID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeFavoriteRepo) Exists(customerID, itemID string) (bool, error) {
	for _, f := range r.lists[customerID] {
		if f.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFavoriteRepo) ReplaceAll(customerID string, favorites []domain.Favorite) error {
	r.lists[customerID] = favorites
	return nil
}

func TestImportReplacesList(t *testing.T) {
	repo := newFakeFavoriteRepo()
	repo.lists["cust-1"] = []domain.Favorite{
		{CustomerID: "cust-1", ItemID: "pooja:old", Kind: domain.KindPooja},
	}

	handler := NewImportFavoritesHandler(repo)
	imported, err := handler.Handle(context.Background(), ImportFavoritesCommand{
		CustomerID: "cust-1",
		Favorites: []domain.Favorite{
			{CustomerID: "cust-1", ItemID: "pooja:abhishekam", Kind: domain.KindPooja, Title: "Abhishekam"},
			{CustomerID: "cust-1", ItemID: "kit:daily-pooja-kit", Kind: domain.KindKit, Title: "Daily Pooja Kit"},
		},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(imported) != 2 {
		t.Fatalf("imported %d entries, want 2", len(imported))
	}
	stored := repo.lists["cust-1"]
	if len(stored) != 2 || stored[0].ItemID != "pooja:abhishekam" {
		t.Errorf("stored list %+v", stored)
	}
}

func TestImportDropsInvalidAndDuplicateEntries(t *testing.T) {
	repo := newFakeFavoriteRepo()
	handler := NewImportFavoritesHandler(repo)

	imported, err := handler.Handle(context.Background(), ImportFavoritesCommand{
		CustomerID: "cust-1",
		Favorites: []domain.Favorite{
			{ItemID: "pooja:abhishekam", Kind: domain.KindPooja},
			{ItemID: "", Kind: domain.KindPooja},                // missing id
			{ItemID: "pooja:archana", Kind: "bookmark"},         // bad kind
			{ItemID: "pooja:abhishekam", Kind: domain.KindPooja}, // duplicate
		},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("imported %d entries, want 1", len(imported))
	}
}

func TestImportCorruptSnapshotYieldsEmptyList(t *testing.T) {
	repo := newFakeFavoriteRepo()
	repo.lists["cust-1"] = []domain.Favorite{
		{CustomerID: "cust-1", ItemID: "pooja:old", Kind: domain.KindPooja},
	}

	handler := NewImportFavoritesHandler(repo)
	imported, err := handler.Handle(context.Background(), ImportFavoritesCommand{
		CustomerID: "cust-1",
		Favorites: []domain.Favorite{
			{ItemID: "", Kind: ""},
			{ItemID: "x", Kind: "y"},
		},
	})
	if err != nil {
		t.Fatalf("a corrupt snapshot must not error: %v", err)
	}
	if len(imported) != 0 {
		t.Errorf("imported %d entries, want 0", len(imported))
	}
	if len(repo.lists["cust-1"]) != 0 {
		t.Error("stored list must be replaced by the empty import")
	}
}

func TestRemoveFavoriteAbsentIsNoOp(t *testing.T) {
	repo := newFakeFavoriteRepo()
	repo.lists["cust-1"] = []domain.Favorite{
		{CustomerID: "cust-1", ItemID: "pooja:abhishekam", Kind: domain.KindPooja},
	}
	handler := NewRemoveFavoriteHandler(repo)

	if err := handler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: "cust-1", ItemID: "pooja:never-added"}); err != nil {
		t.Fatalf("removing an absent item must be a no-op, got %v", err)
	}
	if len(repo.lists["cust-1"]) != 1 {
		t.Error("the saved list must be untouched")
	}

	if err := handler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: "cust-1", ItemID: "pooja:abhishekam"}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(repo.lists["cust-1"]) != 0 {
		t.Error("the saved item must be removed")
	}

	// Removing it again still succeeds
	if err := handler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: "cust-1", ItemID: "pooja:abhishekam"}); err != nil {
		t.Fatalf("repeat remove: %v", err)
	}
}

func TestAddFavoriteIdempotent(t *testing.T) {
	repo := newFakeFavoriteRepo()
	handler := NewAddFavoriteHandler(repo)

	favorite := domain.Favorite{ItemID: "pooja:abhishekam", Kind: domain.KindPooja, Title: "Abhishekam"}

	if err := handler.Handle(context.Background(), AddFavoriteCommand{CustomerID: "cust-1", Favorite: favorite}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := handler.Handle(context.Background(), AddFavoriteCommand{CustomerID: "cust-1", Favorite: favorite}); err != nil {
		t.Fatalf("repeat add: %v", err)
	}

	if len(repo.lists["cust-1"]) != 1 {
		t.Errorf("list has %d entries, want 1", len(repo.lists["cust-1"]))
	}
}
