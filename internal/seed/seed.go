// Package seed supplies the fixed initial graph of users, posts and
// notifications the stores start from. The fixture is deterministic and
// read-only; accessors hand out deep copies so callers cannot mutate it.
package seed

import (
	"time"

	"agora/internal/model"
)

// All timestamps in the fixture are offsets from this instant so the
// dataset is identical on every run.
var reference = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func ago(d time.Duration) string {
	return reference.Add(-d).Format(time.RFC3339)
}

func str(s string) *string { return &s }

var users = []model.User{
	{
		ID:        "user-1",
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		Avatar:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
		Bio:       "Apaixonada pela cultura grega e suas tradições",
		Followers: 245,
		Following: 123,
	},
	{
		ID:        "user-2",
		Name:      "João Oliveira",
		Email:     "joao@example.com",
		Avatar:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
		Bio:       "Estudante de História Grega e Filosofia",
		Followers: 178,
		Following: 211,
	},
	{
		ID:        "user-3",
		Name:      "Sofia Costa",
		Email:     "sofia@example.com",
		Avatar:    "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
		Bio:       "Chef especializada em culinária mediterrânea",
		Followers: 327,
		Following: 142,
	},
	{
		ID:        "user-4",
		Name:      "Lucas Santos",
		Email:     "lucas@example.com",
		Avatar:    "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg",
		Bio:       "Viajante e fotógrafo amador. Grécia é meu lugar favorito!",
		Followers: 189,
		Following: 156,
	},
}

var posts = []model.Post{
	{
		ID:         "post-1",
		UserID:     "user-1",
		UserName:   "Maria Silva",
		UserAvatar: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
		Content: "Acabo de voltar de uma viagem incrível para Santorini! As vistas são de tirar o fôlego. " +
			"Quem mais já teve a oportunidade de visitar este paraíso grego?",
		ImageURL:  str("https://images.pexels.com/photos/1010657/pexels-photo-1010657.jpeg"),
		CreatedAt: ago(1 * time.Hour),
		Likes:     42,
		Comments: []model.Comment{
			{
				ID:         "comment-1",
				UserID:     "user-2",
				UserName:   "João Oliveira",
				UserAvatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
				Content:    "Que maravilha! Estive lá no ano passado e foi uma experiência incrível!",
				CreatedAt:  ago(30 * time.Minute),
			},
			{
				ID:         "comment-2",
				UserID:     "user-3",
				UserName:   "Sofia Costa",
				UserAvatar: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
				Content:    "As fotos estão lindas! Qual foi seu restaurante favorito?",
				CreatedAt:  ago(15 * time.Minute),
			},
		},
	},
	{
		ID:         "post-2",
		UserID:     "user-2",
		UserName:   "João Oliveira",
		UserAvatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
		Content: "Hoje estou estudando sobre a filosofia de Sócrates e sua influência no pensamento ocidental. " +
			"Alguém mais se interessa por filosofia grega?",
		ImageURL:  nil,
		CreatedAt: ago(24 * time.Hour),
		Likes:     28,
		Comments:  []model.Comment{},
	},
	{
		ID:         "post-3",
		UserID:     "user-3",
		UserName:   "Sofia Costa",
		UserAvatar: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
		Content: "Acabei de preparar uma autêntica moussaka grega para o jantar! A combinação de berinjela, " +
			"carne moída e molho bechamel é simplesmente divina. Quem gostaria da receita?",
		ImageURL:  str("https://images.pexels.com/photos/6419736/pexels-photo-6419736.jpeg"),
		CreatedAt: ago(48 * time.Hour),
		Likes:     56,
		Comments: []model.Comment{
			{
				ID:         "comment-3",
				UserID:     "user-1",
				UserName:   "Maria Silva",
				UserAvatar: "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
				Content:    "Tem uma aparência incrível! Eu adoraria a receita!",
				CreatedAt:  ago(47 * time.Hour),
			},
		},
	},
	{
		ID:         "post-4",
		UserID:     "user-4",
		UserName:   "Lucas Santos",
		UserAvatar: "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg",
		Content: "Algumas fotos que tirei durante minha viagem para Atenas. " +
			"O Parthenon é ainda mais impressionante pessoalmente!",
		ImageURL:  str("https://images.pexels.com/photos/164336/pexels-photo-164336.jpeg"),
		CreatedAt: ago(72 * time.Hour),
		Likes:     37,
		Comments:  []model.Comment{},
	},
}

var notifications = []model.Notification{
	{
		ID:         "notif-1",
		Type:       model.NotificationLike,
		UserID:     "user-2",
		UserName:   "João Oliveira",
		UserAvatar: "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
		Message:    "curtiu sua publicação",
		PostID:     str("post-1"),
		CreatedAt:  ago(30 * time.Minute),
		Read:       false,
	},
	{
		ID:         "notif-2",
		Type:       model.NotificationComment,
		UserID:     "user-3",
		UserName:   "Sofia Costa",
		UserAvatar: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
		Message:    "comentou em sua publicação",
		PostID:     str("post-1"),
		CreatedAt:  ago(1 * time.Hour),
		Read:       true,
	},
	{
		ID:         "notif-3",
		Type:       model.NotificationFollow,
		UserID:     "user-4",
		UserName:   "Lucas Santos",
		UserAvatar: "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg",
		Message:    "começou a seguir você",
		PostID:     nil,
		CreatedAt:  ago(24 * time.Hour),
		Read:       false,
	},
}

// Users returns a copy of the seed user set.
func Users() []model.User {
	out := make([]model.User, len(users))
	copy(out, users)
	return out
}

// Posts returns a deep copy of the seed feed, most recent first.
func Posts() []model.Post {
	out := make([]model.Post, len(posts))
	for i, p := range posts {
		cs := make([]model.Comment, len(p.Comments))
		copy(cs, p.Comments)
		p.Comments = cs
		if p.ImageURL != nil {
			p.ImageURL = str(*p.ImageURL)
		}
		out[i] = p
	}
	return out
}

// Notifications returns a copy of the seed notifications.
func Notifications() []model.Notification {
	out := make([]model.Notification, len(notifications))
	for i, n := range notifications {
		if n.PostID != nil {
			n.PostID = str(*n.PostID)
		}
		out[i] = n
	}
	return out
}
