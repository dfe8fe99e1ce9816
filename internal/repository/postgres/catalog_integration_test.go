//go:build integration

package postgres_test

import (
	"encoding/json"
	"goodsStore/domain"
	"goodsStore/internal/repository/postgres"
)

func (s *RepositorySuite) TestArtistRepository() {
	repo := postgres.NewArtistRepository(s.db)

	first := &domain.Artist{Name: "Kim Hong-do", Title: "Painter"}
	s.Require().NoError(repo.Create(s.ctx, first))
	second := &domain.Artist{Name: "Shin Yun-bok", Status: domain.ArtistApproved}
	s.Require().NoError(repo.Create(s.ctx, second))

	got, err := repo.FindByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(domain.ArtistPending, got.Status)
	s.Nil(got.Bio)

	all, err := repo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(second.ID, all[0].ID)

	bio := "Genre painter of the late Joseon"
	s.Require().NoError(repo.Update(s.ctx, &domain.Artist{ID: first.ID, Name: "Kim Hong-do", Title: "Court painter", Bio: &bio}))
	s.Require().NoError(repo.UpdateStatus(s.ctx, first.ID, domain.ArtistApproved))
	// same status twice still finds the row
	s.Require().NoError(repo.UpdateStatus(s.ctx, first.ID, domain.ArtistApproved))

	got, err = repo.FindByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal("Court painter", got.Title)
	s.Equal(domain.ArtistApproved, got.Status)
	s.Require().NotNil(got.Bio)
	s.Equal(bio, *got.Bio)

	s.ErrorIs(repo.Update(s.ctx, &domain.Artist{ID: 999, Name: "ghost"}), domain.ErrArtistNotFound)
	s.ErrorIs(repo.UpdateStatus(s.ctx, 999, domain.ArtistRejected), domain.ErrArtistNotFound)

	err = s.db.Exec("UPDATE artists SET status = 'famous' WHERE id = ?", first.ID).Error
	s.Error(err)

	unknownUser := uint64(404)
	s.ErrorIs(repo.Create(s.ctx, &domain.Artist{Name: "orphan", UserID: &unknownUser}), domain.ErrUserNotFound)

	s.Require().NoError(repo.Delete(s.ctx, first.ID))
	s.ErrorIs(repo.Delete(s.ctx, first.ID), domain.ErrArtistNotFound)
	_, err = repo.FindByID(s.ctx, first.ID)
	s.ErrorIs(err, domain.ErrArtistNotFound)
}

func (s *RepositorySuite) TestUserRepository() {
	repo := postgres.NewUserRepository(s.db)

	s.Require().NoError(s.db.Create(&domain.User{ID: 1, Name: "Yoon", Email: "yoon@example.com"}).Error)
	s.Require().NoError(s.db.Create(&domain.User{ID: 2, Name: "Ahn", Email: "ahn@example.com"}).Error)
	s.Require().NoError(s.db.Create(&domain.User{ID: 3, Name: "Baek", Email: "baek@example.com", Role: domain.RoleAdmin}).Error)
	// rows written by the auth service may carry lower case roles
	s.Require().NoError(s.db.Exec("UPDATE users SET role = 'user' WHERE id = 1").Error)

	users, err := repo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Equal("Baek", users[0].FullName)
	s.Equal(domain.RoleAdmin, users[0].Role)
	s.Equal("Ahn", users[1].FullName)
	s.Equal("Yoon", users[2].FullName)
	s.Equal(domain.RoleUser, users[2].Role)
	s.Nil(users[2].AvatarURL)

	s.Require().NoError(repo.UpdateRole(s.ctx, 2, domain.RoleAdmin))
	s.Require().NoError(repo.UpdateRole(s.ctx, 2, domain.RoleAdmin))
	s.ErrorIs(repo.UpdateRole(s.ctx, 99, domain.RoleUser), domain.ErrUserNotFound)

	id := s.addGoods("Brush", 3, "10")
	userID := uint64(2)
	res, err := s.order(id, 1, &userID)
	s.Require().NoError(err)

	s.Require().NoError(repo.Delete(s.ctx, 2))
	s.ErrorIs(repo.Delete(s.ctx, 2), domain.ErrUserNotFound)

	order, err := s.ordersRepo.GetOrder(s.ctx, res.ID)
	s.Require().NoError(err)
	s.Nil(order.UserID)
}

func (s *RepositorySuite) TestProductRepository() {
	repo := postgres.NewProductRepository(s.db)

	crafts := domain.Category{Name: "Crafts"}
	prints := domain.Category{Name: "Prints"}
	s.Require().NoError(s.db.Create(&crafts).Error)
	s.Require().NoError(s.db.Create(&prints).Error)

	s.Require().NoError(s.db.Omit("Category").Create(&[]domain.Product{
		{Name: "Moon jar", CategoryID: &crafts.ID, Details: json.RawMessage(`{"location":"Icheon"}`)},
		{Name: "Woodblock", CategoryID: &prints.ID},
		{Name: "Loose item"},
	}).Error)

	all, err := repo.FindAll(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Require().NotNil(all[0].CategoryName)
	s.Equal("Crafts", *all[0].CategoryName)
	s.JSONEq(`{"location":"Icheon"}`, string(all[0].Details))
	s.Nil(all[2].CategoryName)
	s.Empty(all[1].Details)

	filtered, err := repo.FindAll(s.ctx, &prints.ID)
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal("Woodblock", filtered[0].Name)

	missing := uint64(999)
	none, err := repo.FindAll(s.ctx, &missing)
	s.Require().NoError(err)
	s.Empty(none)
}
