package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/movie-form/internal/config"
	"github.com/ytget/movie-form/internal/model"
)

// TableModel is the data the form displays and mutates
type TableModel interface {
	RowCount() int
	ColumnCount() int
	ColumnName(col int) string
	Value(row, col int) string

	InsertRow(title string, year, rating int) bool
	DeleteRow(row int) bool
	LoadAllMovies() error
	Shutdown()

	AddListener(binding.DataListener)
}

// MovieForm is the single-window controller for the movies table
type MovieForm struct {
	window       fyne.Window
	app          fyne.App
	model        TableModel
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger

	titleLabel   *widget.Label
	yearLabel    *widget.Label
	ratingLabel  *widget.Label
	titleEntry   *widget.Entry
	yearEntry    *widget.Entry
	ratingSlider *widget.Slider
	ratingValue  *widget.Label

	addButton    *widget.Button
	deleteButton *widget.Button
	quitButton   *widget.Button

	table       *widget.Table
	selectedRow int

	handlers map[Event]func()

	now         func() time.Time
	showMessage func(message string)
	quit        func()
}

// Option customizes a MovieForm
type Option func(*MovieForm)

// WithLogger sets the form logger
func WithLogger(logger zerolog.Logger) Option {
	return func(f *MovieForm) {
		f.logger = logger.With().Str("component", "form").Logger()
	}
}

// WithClock overrides the clock used for the year upper bound
func WithClock(now func() time.Time) Option {
	return func(f *MovieForm) {
		f.now = now
	}
}

// WithMessenger replaces the blocking information dialog used for user messages
func WithMessenger(show func(message string)) Option {
	return func(f *MovieForm) {
		f.showMessage = show
	}
}

// WithQuitFunc replaces the call that ends the event loop on Quit
func WithQuitFunc(quit func()) Option {
	return func(f *MovieForm) {
		f.quit = quit
	}
}

// NewMovieForm builds the form inside window and binds it to tableModel
func NewMovieForm(window fyne.Window, app fyne.App, tableModel TableModel, opts ...Option) *MovieForm {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	f := &MovieForm{
		window:       window,
		app:          app,
		model:        tableModel,
		settings:     settings,
		localization: localization,
		logger:       zerolog.Nop(),
		selectedRow:  NoSelection,
		now:          time.Now,
		quit:         app.Quit,
	}
	f.showMessage = f.showInformation

	for _, opt := range opts {
		opt(f)
	}

	f.registerHandlers()
	f.setupUI()

	f.model.AddListener(binding.NewDataListener(f.onModelChanged))
	f.window.SetOnClosed(func() {
		f.Dispatch(EventClose)
	})

	f.logger.Info().Int("rows", f.model.RowCount()).Msg("form initialized")
	return f
}

// setupUI creates and arranges all UI components
func (f *MovieForm) setupUI() {
	f.window.SetTitle(f.text(KeyAppTitle))
	f.createMenu()

	f.titleLabel = widget.NewLabel(f.text(KeyTitle))
	f.yearLabel = widget.NewLabel(f.text(KeyYear))
	f.ratingLabel = widget.NewLabel(f.text(KeyRating))

	f.titleEntry = widget.NewEntry()

	f.yearEntry = widget.NewEntry()
	f.yearEntry.SetPlaceHolder(YearPlaceholder)
	f.yearEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := model.ParseYear(s, f.now())
		return err
	}
	f.yearEntry.OnSubmitted = func(string) {
		f.Dispatch(EventAdd)
	}

	// The slider only yields whole values in [MinRating, MaxRating]
	f.ratingSlider = widget.NewSlider(model.MinRating, model.MaxRating)
	f.ratingSlider.Step = RatingStep
	f.ratingValue = widget.NewLabel("")
	f.ratingSlider.OnChanged = func(v float64) {
		f.ratingValue.SetText(fmt.Sprintf(RatingLabelFormat, int(v)))
	}
	f.ratingSlider.SetValue(model.DefaultRating)
	f.ratingValue.SetText(fmt.Sprintf(RatingLabelFormat, int(f.ratingSlider.Value)))
	ratingRow := container.NewBorder(nil, nil, nil, f.ratingValue, f.ratingSlider)

	inputGrid := container.NewGridWithColumns(InputGridColumns,
		f.titleLabel, f.titleEntry,
		f.yearLabel, f.yearEntry,
		f.ratingLabel, ratingRow,
	)

	f.addButton = widget.NewButton(f.text(KeyAddMovie), func() { f.Dispatch(EventAdd) })
	f.deleteButton = widget.NewButton(f.text(KeyDeleteMovie), func() { f.Dispatch(EventDelete) })
	f.quitButton = widget.NewButton(f.text(KeyQuit), func() { f.Dispatch(EventQuit) })
	buttons := container.NewGridWithRows(ButtonRows, f.addButton, f.deleteButton, f.quitButton)

	f.table = widget.NewTable(
		func() (int, int) {
			return f.model.RowCount(), f.model.ColumnCount()
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(f.model.Value(id.Row, id.Col))
		},
	)
	f.table.ShowHeaderRow = true
	f.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	f.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		obj.(*widget.Label).SetText(f.columnTitle(id.Col))
	}
	for col, width := range ColumnWidths {
		f.table.SetColumnWidth(col, width)
	}
	f.table.OnSelected = f.onSelected
	f.table.OnUnselected = f.onUnselected

	f.window.SetContent(container.NewBorder(inputGrid, buttons, nil, nil, f.table))
}

// createMenu creates the application menu
func (f *MovieForm) createMenu() {
	quitItem := fyne.NewMenuItem(f.text(KeyQuit), func() { f.Dispatch(EventQuit) })
	quitItem.IsQuit = true

	languageMenu := fyne.NewMenu(f.text(KeyLanguage))
	for code, name := range f.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			f.onLanguageChange(langCode)
		})
		item.Checked = f.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	f.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(f.text(KeyFile), quitItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language and saves it
func (f *MovieForm) onLanguageChange(langCode string) {
	f.localization.SetLanguage(langCode)
	f.settings.SetLanguage(langCode)
	f.refreshUITexts()
	f.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (f *MovieForm) refreshUITexts() {
	f.window.SetTitle(f.text(KeyAppTitle))
	f.titleLabel.SetText(f.text(KeyTitle))
	f.yearLabel.SetText(f.text(KeyYear))
	f.ratingLabel.SetText(f.text(KeyRating))
	f.addButton.SetText(f.text(KeyAddMovie))
	f.deleteButton.SetText(f.text(KeyDeleteMovie))
	f.quitButton.SetText(f.text(KeyQuit))
	f.table.Refresh()
}

// onAdd validates the inputs and inserts a movie
func (f *MovieForm) onAdd() {
	title, err := model.NormalizeTitle(f.titleEntry.Text)
	if err != nil {
		f.showError(err)
		return
	}

	year, err := model.ParseYear(f.yearEntry.Text, f.now())
	if err != nil {
		f.showError(err)
		return
	}

	rating := model.ClampRating(int(f.ratingSlider.Value))

	f.logger.Info().Str("title", title).Int("year", year).Int("rating", rating).Msg("adding movie")
	if !f.model.InsertRow(title, year, rating) {
		f.showMessage(f.text(KeyErrorAdding))
		return
	}

	// The table refreshes through the model listener
	f.titleEntry.SetText("")
	f.yearEntry.SetText("")
}

// onDelete deletes the selected movie and reloads all rows
func (f *MovieForm) onDelete() {
	row := f.selectedRow
	if row == NoSelection {
		f.showMessage(f.text(KeyChooseMovie))
		return
	}

	f.logger.Info().Int("row", row).Msg("deleting movie")
	if !f.model.DeleteRow(row) {
		f.showMessage(f.text(KeyErrorDeleting))
		return
	}

	if err := f.model.LoadAllMovies(); err != nil {
		f.logger.Error().Err(err).Msg("reload after delete failed")
	}
	f.clearSelection()
}

// onQuit shuts the store down and ends the event loop
func (f *MovieForm) onQuit() {
	f.logger.Info().Msg("quit")
	f.model.Shutdown()
	f.quit()
}

// onClose shuts the store down when the window closes
func (f *MovieForm) onClose() {
	f.logger.Info().Msg("closing")
	f.settings.SetWindowSize(f.window.Canvas().Size())
	f.model.Shutdown()
}

func (f *MovieForm) onSelected(id widget.TableCellID) {
	f.selectedRow = id.Row
}

func (f *MovieForm) onUnselected(widget.TableCellID) {
	f.selectedRow = NoSelection
}

func (f *MovieForm) clearSelection() {
	f.selectedRow = NoSelection
	f.table.UnselectAll()
}

// onModelChanged redraws the table and drops a selection that no longer exists
func (f *MovieForm) onModelChanged() {
	if f.selectedRow >= f.model.RowCount() {
		f.selectedRow = NoSelection
	}
	f.table.Refresh()
}

// SelectedRow returns the selected row index or NoSelection
func (f *MovieForm) SelectedRow() int {
	return f.selectedRow
}

func (f *MovieForm) columnTitle(col int) string {
	name := f.model.ColumnName(col)
	return f.localization.GetText(strings.ToLower(name))
}

// showError maps err to a localized user message
func (f *MovieForm) showError(err error) {
	f.logger.Debug().Err(err).Msg("input rejected")

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		switch ve.Field {
		case model.FieldTitle:
			f.showMessage(f.text(KeyEnterTitle))
		case model.FieldYear:
			f.showMessage(f.text(KeyBadYear))
		default:
			f.showMessage(f.text(KeyBadRating))
		}
		return
	}
	f.showMessage(err.Error())
}

func (f *MovieForm) showInformation(message string) {
	dialog.ShowInformation(f.text(KeyAppTitle), message, f.window)
}

func (f *MovieForm) text(key string) string {
	return f.localization.GetText(key)
}
