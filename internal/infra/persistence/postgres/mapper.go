package postgres

import (
	"launchpad/internal/domain/entity"
	"launchpad/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		GoogleSubject: m.GoogleSubject,
		FullName:      m.FullName,
		Bio:           m.Bio,
		Location:      m.Location,
		Website:       m.Website,
		AvatarURL:     m.AvatarURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		GoogleSubject: u.GoogleSubject,
		FullName:      u.FullName,
		Bio:           u.Bio,
		Location:      u.Location,
		Website:       u.Website,
		AvatarURL:     u.AvatarURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toStartupDomain(m *model.StartupModel) *entity.Startup {
	return &entity.Startup{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Industry:    m.Industry,
		Stage:       m.Stage,
		Progress:    m.Progress,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromStartupDomain(s *entity.Startup) *model.StartupModel {
	return &model.StartupModel{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Description: s.Description,
		Industry:    s.Industry,
		Stage:       s.Stage,
		Progress:    s.Progress,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toTaskDomain(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          m.ID,
		StartupID:   m.StartupID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TaskStatus(m.Status),
		Priority:    entity.TaskPriority(m.Priority),
		Category:    m.Category,
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromTaskDomain(t *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:          t.ID,
		StartupID:   t.StartupID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Category:    t.Category,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toResourceDomain(m *model.ResourceModel) (*entity.Resource, error) {
	r := &entity.Resource{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Category:    m.Category,
		Type:        m.Type,
		Industry:    m.Industry,
		Tags:        []string{},
		CreatedAt:   m.CreatedAt,
	}
	if err := unmarshalJSON(m.Tags, &r.Tags); err != nil {
		return nil, err
	}
	return r, nil
}

func fromResourceDomain(r *entity.Resource) (*model.ResourceModel, error) {
	tags, err := marshalJSON(r.Tags)
	if err != nil {
		return nil, err
	}
	return &model.ResourceModel{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Category:    r.Category,
		Type:        r.Type,
		Industry:    r.Industry,
		Tags:        datatypes.JSON(tags),
		CreatedAt:   r.CreatedAt,
	}, nil
}

func toPostDomain(m *model.ForumPostModel) (*entity.ForumPost, error) {
	p := &entity.ForumPost{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Content:      m.Content,
		Category:     m.Category,
		Tags:         []string{},
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if err := unmarshalJSON(m.Tags, &p.Tags); err != nil {
		return nil, err
	}
	return p, nil
}

func fromPostDomain(p *entity.ForumPost) (*model.ForumPostModel, error) {
	tags, err := marshalJSON(p.Tags)
	if err != nil {
		return nil, err
	}
	return &model.ForumPostModel{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		Tags:      datatypes.JSON(tags),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func toCommentDomain(m *model.ForumCommentModel) *entity.ForumComment {
	return &entity.ForumComment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toNotificationDomain(m *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        m.Type,
		Title:       m.Title,
		Message:     m.Message,
		Read:        m.Read,
		RelatedID:   m.RelatedID,
		RelatedType: m.RelatedType,
		CreatedAt:   m.CreatedAt,
	}
}

func toArtifactDomain(m *model.ArtifactModel) (*entity.Artifact, error) {
	a := &entity.Artifact{
		ID:        m.ID,
		StartupID: m.StartupID,
		Kind:      entity.ArtifactKind(m.Kind),
		Title:     m.Title,
		Summary:   m.Summary,
		Items:     []entity.ArtifactItem{},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if err := unmarshalJSON(m.Items, &a.Items); err != nil {
		return nil, err
	}
	return a, nil
}

func fromArtifactDomain(a *entity.Artifact) (*model.ArtifactModel, error) {
	items, err := marshalJSON(a.Items)
	if err != nil {
		return nil, err
	}
	return &model.ArtifactModel{
		ID:        a.ID,
		StartupID: a.StartupID,
		Kind:      string(a.Kind),
		Title:     a.Title,
		Summary:   a.Summary,
		Items:     datatypes.JSON(items),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}
