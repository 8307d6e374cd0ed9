package views

const indexTemplateStr = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.EventName}}</title>
</head>
<body class="bg-white dark:bg-gray-900 text-gray-900 dark:text-gray-100">
<header class="py-16 text-center">
  <h1 class="text-4xl font-bold">{{.EventName}}</h1>
  <p class="mt-2 text-lg text-gray-600 dark:text-gray-400">{{.EventDate}}</p>
</header>

<section id="about" class="max-w-4xl mx-auto px-4 py-8">
  <h2 class="text-2xl font-bold mb-4">About</h2>
  <p>{{.EventName}} brings the community together for a full day of sessions and workshops.</p>
</section>

<section id="agenda" class="max-w-6xl mx-auto px-4 py-8">
  <h2 class="text-2xl font-bold mb-4">Agenda</h2>
{{if .Schedule.Empty}}
  <p class="text-gray-500">Schedule TBA</p>
{{else}}
  {{if .Disclaimer}}<p class="text-sm text-gray-500 mb-4">{{.Disclaimer}}</p>{{end}}
  {{template "grid" .Schedule}}
  {{template "list" .Schedule}}
{{end}}
</section>

<section id="sessions" class="max-w-6xl mx-auto px-4 py-8">
  <h2 class="text-2xl font-bold mb-4">Sessions</h2>
{{if .SessionIDs}}
  <div class="grid gap-6 md:grid-cols-2 lg:grid-cols-3">
  {{range $id := .SessionIDs}}{{with index $.Sessions $id}}
    <a id="session-{{.SessionID}}" href="{{$.BasePath}}sessions/{{.SessionID}}" class="block rounded-lg border border-gray-200 dark:border-gray-700 p-4 hover:shadow-md">
      <h3 class="font-semibold">{{.Title}}</h3>
      <p class="text-sm text-gray-600 dark:text-gray-400 mt-1">{{.Speaker}}</p>
    </a>
  {{end}}{{end}}
  </div>
{{else}}
  <p class="text-gray-500">Sessions TBA</p>
{{end}}
</section>

<section id="workshops" class="max-w-6xl mx-auto px-4 py-8">
  <h2 class="text-2xl font-bold mb-4">Workshops</h2>
{{if .Workshops}}
  <div class="grid gap-6 md:grid-cols-2">
  {{range .Workshops}}
    <a id="workshop-{{.ID}}" href="{{$.BasePath}}workshops/{{.ID}}" class="block rounded-lg border border-gray-200 dark:border-gray-700 p-4 hover:shadow-md">
      <h3 class="font-semibold">{{.Title}}</h3>
      <p class="text-sm text-gray-600 dark:text-gray-400 mt-1">{{.SpeakerName}}</p>
    </a>
  {{end}}
  </div>
{{else}}
  <p class="text-gray-500">Workshops TBA</p>
{{end}}
</section>

<section id="speakers" class="max-w-6xl mx-auto px-4 py-8">
  <h2 class="text-2xl font-bold mb-4">Speakers</h2>
{{if .SpeakerIDs}}
  <div class="grid gap-6 md:grid-cols-3 lg:grid-cols-4">
  {{range $id := .SpeakerIDs}}{{with index $.Speakers $id}}
    <a id="speaker-{{.SpeakerID}}" href="{{$.BasePath}}speakers/{{.SpeakerID}}" class="block text-center p-4 hover:shadow-md rounded-lg">
      {{if .Photo}}<img src="{{.Photo}}" alt="{{.Name}}" class="w-24 h-24 rounded-full object-cover mx-auto">{{end}}
      <h3 class="font-semibold mt-2">{{.Name}}</h3>
      <p class="text-sm text-gray-600 dark:text-gray-400">{{.Position}}</p>
    </a>
  {{end}}{{end}}
  </div>
{{else}}
  <p class="text-gray-500">Speakers TBA</p>
{{end}}
</section>

<section id="gallery" class="max-w-4xl mx-auto px-4 py-8">
  <h2 class="text-2xl font-bold mb-4">Photos</h2>
{{if .Photos}}
  <div class="relative overflow-hidden rounded-lg">
  {{range $i, $p := .Photos}}
    <img src="{{$p.Src}}" alt="{{if $p.Alt}}{{$p.Alt}}{{else}}Event photo{{end}}" class="gallery-slide{{if eq $i 0}} block{{else}} hidden{{end}} w-full" loading="lazy">
  {{end}}
  </div>
{{else if .GalleryHref}}
  <a href="{{.GalleryHref}}" class="text-blue-600 hover:underline">View the photo album</a>
{{else}}
  <p class="text-gray-500">Photos coming soon</p>
{{end}}
</section>
</body>
</html>

{{define "grid"}}
<div class="schedule-grid hidden md:flex relative" style="height: {{px .HeightPx}}">
  <div class="schedule-times relative w-20 shrink-0">
  {{range .Ticks}}
    <span class="absolute text-xs text-gray-500" style="top: {{px .TopPx}}">{{.Label}}</span>
  {{end}}
  </div>
{{range .Columns}}
  <div class="schedule-room relative flex-1 border-l border-gray-200 dark:border-gray-700">
    <h3 class="h-12 flex items-center justify-center font-semibold">{{.Room.Name}}</h3>
  {{range .Blocks}}
    <a href="#session-{{.Session.ID}}" class="absolute inset-x-1 rounded p-2 text-sm overflow-hidden border border-gray-300 dark:border-gray-600"
       style="top: {{px .TopPx}}; height: {{px .HeightPx}}">
      <span class="font-medium">{{.Session.Title}}</span>
      {{if .Session.Speaker}}<span class="block text-xs text-gray-600 dark:text-gray-400">{{.Session.Speaker}}</span>{{end}}
      <span class="block text-xs text-gray-500">{{.Session.StartTime}} - {{.Session.EndTime}}</span>
    </a>
  {{end}}
  </div>
{{end}}
</div>
{{end}}

{{define "list"}}
<div class="schedule-list md:hidden space-y-3">
{{range .List}}
  <a href="#session-{{.ID}}" class="block rounded border border-gray-200 dark:border-gray-700 p-3">
    <span class="text-xs text-gray-500">{{.StartTime}} - {{.EndTime}} · {{.RoomDisplay}}</span>
    <span class="block font-medium">{{.Title}}</span>
    {{if .Speaker}}<span class="block text-sm text-gray-600 dark:text-gray-400">{{.Speaker}}</span>{{end}}
  </a>
{{end}}
</div>
{{end}}`

const scheduleTemplateStr = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Schedule · {{.EventName}}</title>
</head>
<body class="bg-white dark:bg-gray-900 text-gray-900 dark:text-gray-100">
<main class="max-w-6xl mx-auto px-4 py-8">
  <h1 class="text-3xl font-bold mb-4">Schedule</h1>
{{if .Layout.Empty}}
  <p class="text-gray-500">Schedule TBA</p>
{{else}}
  {{if .Disclaimer}}<p class="text-sm text-gray-500 mb-4">{{.Disclaimer}}</p>{{end}}
  {{template "grid" .Layout}}
  {{template "list" .Layout}}
{{end}}
</main>
</body>
</html>

{{define "grid"}}
<div class="schedule-grid hidden md:flex relative" style="height: {{px .HeightPx}}">
  <div class="schedule-times relative w-20 shrink-0">
  {{range .Ticks}}
    <span class="absolute text-xs text-gray-500" style="top: {{px .TopPx}}">{{.Label}}</span>
  {{end}}
  </div>
{{range .Columns}}
  <div class="schedule-room relative flex-1 border-l border-gray-200 dark:border-gray-700">
    <h3 class="h-12 flex items-center justify-center font-semibold">{{.Room.Name}}</h3>
  {{range .Blocks}}
    <a href="#session-{{.Session.ID}}" class="absolute inset-x-1 rounded p-2 text-sm overflow-hidden border border-gray-300 dark:border-gray-600"
       style="top: {{px .TopPx}}; height: {{px .HeightPx}}">
      <span class="font-medium">{{.Session.Title}}</span>
      {{if .Session.Speaker}}<span class="block text-xs text-gray-600 dark:text-gray-400">{{.Session.Speaker}}</span>{{end}}
      <span class="block text-xs text-gray-500">{{.Session.StartTime}} - {{.Session.EndTime}}</span>
    </a>
  {{end}}
  </div>
{{end}}
</div>
{{end}}

{{define "list"}}
<div class="schedule-list md:hidden space-y-3">
{{range .List}}
  <a href="#session-{{.ID}}" class="block rounded border border-gray-200 dark:border-gray-700 p-3">
    <span class="text-xs text-gray-500">{{.StartTime}} - {{.EndTime}} · {{.RoomDisplay}}</span>
    <span class="block font-medium">{{.Title}}</span>
    {{if .Speaker}}<span class="block text-sm text-gray-600 dark:text-gray-400">{{.Speaker}}</span>{{end}}
  </a>
{{end}}
</div>
{{end}}`

const sessionDetailTemplateStr = `<article class="session-detail p-6">
  <h2 class="text-2xl font-bold mb-4">{{.Title}}</h2>
  {{raw .Content}}
</article>`

const speakerDetailTemplateStr = `<article class="speaker-detail p-6">
  {{raw .Content}}
</article>`

const workshopDetailTemplateStr = `<article class="workshop-detail p-6">
  {{with .Image}}<img src="{{.}}" alt="{{$.Workshop.SpeakerName}}" class="w-32 h-32 rounded-full object-cover mb-4">{{end}}
  <h2 class="text-2xl font-bold mb-2">{{.Workshop.Title}}</h2>
  <p class="text-gray-600 dark:text-gray-400 mb-4">{{.Workshop.SpeakerName}}</p>
  <p class="mb-4">{{.Workshop.Description}}</p>
  {{if gt .Workshop.Capacity 0}}<p class="text-sm text-gray-500 mb-4">Capacity: {{.Workshop.Capacity}}</p>{{end}}
  {{with .Workshop.RegistrationLink}}
  <a href="{{.}}" class="inline-block rounded bg-blue-600 text-white px-4 py-2 hover:bg-blue-700">Register</a>
  {{end}}
</article>`
