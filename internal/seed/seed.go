// Package seed populates empty collections with a consistent demo
// fixture set. Each collection is handled independently: it is seeded
// if and only if it is currently empty, so repeated runs never
// overwrite or duplicate existing data.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/repository"
)

// Result reports how many records each collection received.
type Result struct {
	Competencies int `json:"competencies"`
	Users        int `json:"users"`
	ProjectTags  int `json:"projectTags"`
	TaskTypes    int `json:"taskTypes"`
	Priorities   int `json:"priorities"`
	Statuses     int `json:"statuses"`
	Projects     int `json:"projects"`
	Tasks        int `json:"tasks"`
}

// Generator writes demo fixtures through the repositories.
type Generator struct {
	users        repository.UserRepository
	competencies repository.CompetencyRepository
	projects     repository.ProjectRepository
	tasks        repository.TaskRepository
	projectTags  repository.ProjectTagRepository
	taskTypes    repository.TaskTypeRepository
	priorities   repository.PriorityRepository
	statuses     repository.StatusRepository
}

// NewGenerator creates a Generator over the given repositories.
func NewGenerator(
	users repository.UserRepository,
	competencies repository.CompetencyRepository,
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	projectTags repository.ProjectTagRepository,
	taskTypes repository.TaskTypeRepository,
	priorities repository.PriorityRepository,
	statuses repository.StatusRepository,
) *Generator {
	return &Generator{
		users:        users,
		competencies: competencies,
		projects:     projects,
		tasks:        tasks,
		projectTags:  projectTags,
		taskTypes:    taskTypes,
		priorities:   priorities,
		statuses:     statuses,
	}
}

// Load seeds every empty collection and returns per-collection insert
// counts. Safe to call repeatedly. Cross-references inside the
// generated data always resolve within the same pass.
func (g *Generator) Load() (*Result, error) {
	result := &Result{}
	now := time.Now()

	if err := g.seedCompetencies(result, now); err != nil {
		return nil, err
	}
	if err := g.seedUsers(result, now); err != nil {
		return nil, err
	}
	tagIDs, err := g.seedProjectTags(result, now)
	if err != nil {
		return nil, err
	}
	typeIDs, err := g.seedTaskTypes(result, now)
	if err != nil {
		return nil, err
	}
	priorityIDs, err := g.seedPriorities(result, now)
	if err != nil {
		return nil, err
	}
	statusIDs, err := g.seedStatuses(result, now)
	if err != nil {
		return nil, err
	}
	if err := g.seedProjectsAndTasks(result, now, tagIDs, typeIDs, priorityIDs, statusIDs); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"users":     result.Users,
		"projects":  result.Projects,
		"tasks":     result.Tasks,
	}).Info("seed pass finished")

	return result, nil
}

func (g *Generator) seedCompetencies(result *Result, now time.Time) error {
	count, err := g.competencies.Count()
	if err != nil {
		return fmt.Errorf("failed to count competencies: %w", err)
	}
	if count > 0 {
		return nil
	}

	data := []struct{ name, category string }{
		{"JavaScript", "Programozás"},
		{"TypeScript", "Programozás"},
		{"React", "Frontend"},
		{"Angular", "Frontend"},
		{"Vue.js", "Frontend"},
		{"Node.js", "Backend"},
		{"Go", "Programozás"},
		{"Python", "Programozás"},
		{"Java", "Programozás"},
		{"SQL", "Adatbázis"},
		{"MongoDB", "Adatbázis"},
		{"Docker", "DevOps"},
		{"Kubernetes", "DevOps"},
		{"AWS", "Cloud"},
		{"Azure", "Cloud"},
		{"Projektmenedzsment", "Soft Skills"},
		{"Agile/Scrum", "Metodológia"},
		{"Kommunikáció", "Soft Skills"},
	}

	competencies := make([]models.Competency, 0, len(data))
	for _, d := range data {
		competencies = append(competencies, models.Competency{
			ID:        uuid.NewString(),
			Name:      d.name,
			Category:  d.category,
			CreatedAt: now,
		})
	}

	if err := g.competencies.Seed(competencies); err != nil {
		return fmt.Errorf("failed to seed competencies: %w", err)
	}
	result.Competencies = len(competencies)
	return nil
}

func (g *Generator) seedUsers(result *Result, now time.Time) error {
	count, err := g.users.Count()
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	allCompetencies, err := g.competencies.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load competencies for user seed: %w", err)
	}
	compIDs := make([]string, 0, len(allCompetencies))
	for _, c := range allCompetencies {
		compIDs = append(compIDs, c.ID)
	}

	users := []models.User{
		{
			ID:            uuid.NewString(),
			Name:          "Admin Béla",
			Contacts:      models.Contact{Email: "admin@tms.local", Phone: "+36 30 111 1111"},
			JobTitle:      "Rendszergazda",
			Role:          models.RoleAdmin,
			CompetencyIDs: sliceIDs(compIDs, 0, 5),
			WorkSchedule: models.WorkSchedule{
				WorkdayStart: "08:00",
				WorkdayEnd:   "16:30",
				Vacations:    []models.Vacation{},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Nagy István",
			Contacts:      models.Contact{Email: "nagy.istvan@tms.local", Phone: "+36 30 222 2222"},
			JobTitle:      "Fejlesztési Osztályvezető",
			Role:          models.RoleOsztalyVezeto,
			CompetencyIDs: sliceIDs(compIDs, 0, 8),
			WorkSchedule: models.WorkSchedule{
				WorkdayStart: "09:00",
				WorkdayEnd:   "17:30",
				Vacations: []models.Vacation{
					{
						ID:   uuid.NewString(),
						From: "2025-01-06",
						To:   "2025-01-10",
						Type: models.VacationTypeVacation,
						Note: "Téli szabadság",
					},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Kiss Katalin",
			Contacts:      models.Contact{Email: "kiss.katalin@tms.local"},
			JobTitle:      "Frontend Csoportvezető",
			Role:          models.RoleCsoportVezeto,
			CompetencyIDs: sliceIDs(compIDs, 2, 6),
			WorkSchedule: models.WorkSchedule{
				WorkdayStart: "08:30",
				WorkdayEnd:   "17:00",
				Vacations:    []models.Vacation{},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Tóth Péter",
			Contacts:      models.Contact{Email: "toth.peter@tms.local", Phone: "+36 30 444 4444"},
			JobTitle:      "Senior Frontend Fejlesztő",
			Role:          models.RoleMunkatars,
			CompetencyIDs: sliceIDs(compIDs, 0, 4),
			WorkSchedule: models.WorkSchedule{
				WorkdayStart: "09:00",
				WorkdayEnd:   "17:30",
				Vacations:    []models.Vacation{},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Szabó Anna",
			Contacts:      models.Contact{Email: "szabo.anna@tms.local"},
			JobTitle:      "Junior Fejlesztő",
			Role:          models.RoleMunkatars,
			CompetencyIDs: sliceIDs(compIDs, 0, 2),
			WorkSchedule: models.WorkSchedule{
				WorkdayStart: "08:00",
				WorkdayEnd:   "16:30",
				Vacations: []models.Vacation{
					{
						ID:   uuid.NewString(),
						From: "2025-02-01",
						To:   "2025-02-03",
						Type: models.VacationTypeSick,
						Note: "Betegség",
					},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Kovács Gábor",
			Contacts:      models.Contact{Email: "kovacs.gabor@tms.local"},
			JobTitle:      "Projekt Megfigyelő",
			Role:          models.RoleMegtekinto,
			CompetencyIDs: []string{},
			WorkSchedule: models.WorkSchedule{
				WorkdayStart: "09:00",
				WorkdayEnd:   "17:00",
				Vacations:    []models.Vacation{},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := g.users.Seed(users); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	result.Users = len(users)
	return nil
}

func (g *Generator) seedProjectTags(result *Result, now time.Time) ([]string, error) {
	count, err := g.projectTags.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count project tags: %w", err)
	}
	if count > 0 {
		return collectTagIDs(g.projectTags)
	}

	data := []struct{ name, category string }{
		{"Belső fejlesztés", "Fejlesztés"},
		{"Ügyfélprojekt", "Ügyfél"},
		{"Karbantartás", "Üzemeltetés"},
		{"Kiemelt", ""},
	}

	tags := make([]models.ProjectTag, 0, len(data))
	for _, d := range data {
		tags = append(tags, models.ProjectTag{
			ID:        uuid.NewString(),
			Name:      d.name,
			Category:  d.category,
			CreatedAt: now,
		})
	}

	if err := g.projectTags.Seed(tags); err != nil {
		return nil, fmt.Errorf("failed to seed project tags: %w", err)
	}
	result.ProjectTags = len(tags)

	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (g *Generator) seedTaskTypes(result *Result, now time.Time) ([]string, error) {
	count, err := g.taskTypes.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count task types: %w", err)
	}
	if count > 0 {
		return collectTaskTypeIDs(g.taskTypes)
	}

	data := []struct{ name, category string }{
		{"Fejlesztés", "Munka"},
		{"Hibajavítás", "Munka"},
		{"Tesztelés", "Minőségbiztosítás"},
		{"Dokumentáció", "Adminisztráció"},
		{"Megbeszélés", "Adminisztráció"},
	}

	taskTypes := make([]models.TaskType, 0, len(data))
	for _, d := range data {
		taskTypes = append(taskTypes, models.TaskType{
			ID:        uuid.NewString(),
			Name:      d.name,
			Category:  d.category,
			CreatedAt: now,
		})
	}

	if err := g.taskTypes.Seed(taskTypes); err != nil {
		return nil, fmt.Errorf("failed to seed task types: %w", err)
	}
	result.TaskTypes = len(taskTypes)

	ids := make([]string, 0, len(taskTypes))
	for _, t := range taskTypes {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (g *Generator) seedPriorities(result *Result, now time.Time) ([]string, error) {
	count, err := g.priorities.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count priorities: %w", err)
	}
	if count > 0 {
		return collectPriorityIDs(g.priorities)
	}

	names := []string{"Kritikus", "Magas", "Közepes", "Alacsony"}
	priorities := make([]models.Priority, 0, len(names))
	for i, name := range names {
		priorities = append(priorities, models.Priority{
			ID:        uuid.NewString(),
			Name:      name,
			Order:     i + 1,
			CreatedAt: now,
		})
	}

	if err := g.priorities.Seed(priorities); err != nil {
		return nil, fmt.Errorf("failed to seed priorities: %w", err)
	}
	result.Priorities = len(priorities)

	ids := make([]string, 0, len(priorities))
	for _, p := range priorities {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (g *Generator) seedStatuses(result *Result, now time.Time) ([]string, error) {
	count, err := g.statuses.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses: %w", err)
	}
	if count > 0 {
		return collectStatusIDs(g.statuses)
	}

	data := []struct {
		name    string
		isFinal bool
	}{
		{"Új", false},
		{"Folyamatban", false},
		{"Felülvizsgálat", false},
		{"Kész", true},
		{"Elvetve", true},
	}

	statuses := make([]models.Status, 0, len(data))
	for i, d := range data {
		statuses = append(statuses, models.Status{
			ID:        uuid.NewString(),
			Name:      d.name,
			Order:     i + 1,
			IsFinal:   d.isFinal,
			CreatedAt: now,
		})
	}

	if err := g.statuses.Seed(statuses); err != nil {
		return nil, fmt.Errorf("failed to seed statuses: %w", err)
	}
	result.Statuses = len(statuses)

	ids := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func (g *Generator) seedProjectsAndTasks(result *Result, now time.Time, tagIDs, typeIDs, priorityIDs, statusIDs []string) error {
	projectCount, err := g.projects.Count()
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if projectCount > 0 {
		return nil
	}

	users, err := g.users.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load users for project seed: %w", err)
	}
	lead, member, viewer := pickTeam(users)

	devProject := models.Project{
		ID:          uuid.NewString(),
		Type:        models.ProjectTypeDevelopment,
		Name:        "TMS Belső Portál",
		Code:        "TMSPORT",
		Description: "A belső feladatkezelő portál fejlesztése.",
		Goals:       "Az első negyedév végére működő feladatkezelés.",
		KPI:         "Hibabejelentések száma < 10 / hónap",
		GoalsAttachmentIDs: []string{},
		KPIAttachmentIDs:   []string{},
		TagIDs:             sliceIDs(tagIDs, 0, 1),
		Team: []models.TeamMember{
			{UserID: lead, RoleInProject: models.ProjectRoleLead},
			{UserID: member, RoleInProject: models.ProjectRoleMember},
			{UserID: viewer, RoleInProject: models.ProjectRoleViewer},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	supportProject := models.Project{
		ID:          uuid.NewString(),
		Type:        models.ProjectTypeProductionSupport,
		Name:        "Ügyfélszolgálati Rendszer Üzemeltetés",
		Code:        "UGYFSUP",
		Description: "Éles ügyfélszolgálati rendszer támogatása.",
		GoalsAttachmentIDs: []string{},
		KPIAttachmentIDs:   []string{},
		TagIDs:             sliceIDs(tagIDs, 2, 3),
		Team: []models.TeamMember{
			{UserID: lead, RoleInProject: models.ProjectRoleLead},
			{UserID: member, RoleInProject: models.ProjectRoleMember},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := g.projects.Seed([]models.Project{devProject, supportProject}); err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}
	result.Projects = 2

	taskCount, err := g.tasks.Count()
	if err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	if taskCount > 0 {
		return nil
	}

	parentTask := models.Task{
		ID:              uuid.NewString(),
		ProjectID:       devProject.ID,
		TypeID:          firstID(typeIDs),
		Name:            "Feladatlista képernyő",
		Code:            "TMSPORT-1",
		Description:     "A feladatok listázása szűréssel.",
		AttachmentIDs:   []string{},
		AssigneeUserIDs: []string{member},
		PriorityID:      firstID(priorityIDs),
		StatusID:        firstID(statusIDs),
		EstimatedHours:  hours(16),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	subtask := models.Task{
		ID:              uuid.NewString(),
		ProjectID:       devProject.ID,
		ParentTaskID:    parentTask.ID,
		TypeID:          firstID(typeIDs),
		Name:            "Szűrő komponens",
		Code:            "TMSPORT-2",
		Description:     "Státusz és prioritás szerinti szűrés.",
		AttachmentIDs:   []string{},
		AssigneeUserIDs: []string{member},
		PriorityID:      lastID(priorityIDs),
		StatusID:        firstID(statusIDs),
		EstimatedHours:  hours(6),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	supportTask := models.Task{
		ID:              uuid.NewString(),
		ProjectID:       supportProject.ID,
		TypeID:          lastID(typeIDs),
		Name:            "Heti állapotjelentés",
		Code:            "UGYFSUP-1",
		AttachmentIDs:   []string{},
		AssigneeUserIDs: []string{lead},
		PriorityID:      lastID(priorityIDs),
		StatusID:        firstID(statusIDs),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := g.tasks.Seed([]models.Task{parentTask, subtask, supportTask}); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	result.Tasks = 3

	return nil
}

func pickTeam(users []models.User) (lead, member, viewer string) {
	for _, u := range users {
		switch {
		case lead == "" && models.RoleWeight(u.Role) >= models.RoleWeight(models.RoleCsoportVezeto):
			lead = u.ID
		case member == "" && u.Role == models.RoleMunkatars:
			member = u.ID
		case viewer == "" && u.Role == models.RoleMegtekinto:
			viewer = u.ID
		}
	}
	// Degenerate datasets still get a resolvable team.
	if len(users) > 0 {
		if lead == "" {
			lead = users[0].ID
		}
		if member == "" {
			member = users[0].ID
		}
		if viewer == "" {
			viewer = users[0].ID
		}
	}
	return lead, member, viewer
}

func sliceIDs(ids []string, from, to int) []string {
	if from > len(ids) {
		return []string{}
	}
	if to > len(ids) {
		to = len(ids)
	}
	out := make([]string, to-from)
	copy(out, ids[from:to])
	return out
}

func firstID(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

func lastID(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[len(ids)-1]
}

func hours(h float64) *float64 {
	return &h
}

func collectTagIDs(repo repository.ProjectTagRepository) ([]string, error) {
	tags, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func collectTaskTypeIDs(repo repository.TaskTypeRepository) ([]string, error) {
	taskTypes, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(taskTypes))
	for _, t := range taskTypes {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func collectPriorityIDs(repo repository.PriorityRepository) ([]string, error) {
	priorities, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(priorities))
	for _, p := range priorities {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func collectStatusIDs(repo repository.StatusRepository) ([]string, error) {
	statuses, err := repo.GetAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ids = append(ids, s.ID)
	}
	return ids, nil
}
