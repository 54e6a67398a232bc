package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/role-taxonomy/internal/resolve"
	"github.com/jonathan/role-taxonomy/internal/types"
)

// handleResolve resolves a raw title against the canonical set without
// writing anything. Read-only counterpart of the ensure endpoint.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req types.ResolveRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Resolve(r.Context(), req.RoleTitle, req.RoleFamilyHint, req.JDText)
	if err != nil {
		log.Printf("Error resolving title: %v", err)
		s.errorResponse(w, HTTPStatus(err), "failed to resolve title")
		return
	}
	if result == nil {
		// Empty canonical set. The ensure endpoint can generate a kit.
		s.errorResponse(w, http.StatusNotFound, "no role kits available")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleCreateJob registers a job target and resolves its role kit in one
// step, generating a kit when no confident match exists.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	input := types.JobTargetCreateInput{
		RoleTitle: req.RoleTitle,
		ParsedJD:  req.ParsedJD,
	}
	if req.CompanyName != "" {
		input.CompanyName = &req.CompanyName
	}
	if req.JDText != "" {
		input.JDText = &req.JDText
	}

	job, err := s.store.CreateJobTarget(r.Context(), &input)
	if err != nil {
		log.Printf("Error creating job target: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create job target")
		return
	}

	match, err := s.engine.EnsureRoleKit(r.Context(), ensureInputForJob(job))
	if err != nil {
		log.Printf("Error ensuring role kit for job %s: %v", job.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to resolve role kit")
		return
	}
	if err := s.store.UpdateJobTargetRoleKit(r.Context(), job.ID, match.RoleKitID); err != nil {
		log.Printf("Error assigning role kit to job %s: %v", job.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to assign role kit")
		return
	}
	job.RoleKitID = &match.RoleKitID

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"job":   job,
		"match": match,
	})
}

// handleGetJob returns a single job target.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	job, err := s.store.GetJobTargetByID(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching job target %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch job target")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job target not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleEnsureJobRoleKit re-runs find-or-create for one job and rewrites its
// role-kit reference.
func (s *Server) handleEnsureJobRoleKit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	job, err := s.store.GetJobTargetByID(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching job target %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch job target")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job target not found")
		return
	}

	match, err := s.engine.EnsureRoleKit(r.Context(), ensureInputForJob(job))
	if err != nil {
		log.Printf("Error ensuring role kit for job %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to resolve role kit")
		return
	}

	if job.RoleKitID == nil || *job.RoleKitID != match.RoleKitID {
		if err := s.store.UpdateJobTargetRoleKit(r.Context(), job.ID, match.RoleKitID); err != nil {
			log.Printf("Error assigning role kit to job %s: %v", id, err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to assign role kit")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, match)
}

// handleListRoleKits returns the active canonical set in insertion order.
func (s *Server) handleListRoleKits(w http.ResponseWriter, r *http.Request) {
	kits, err := s.store.ListRoleKits(r.Context())
	if err != nil {
		log.Printf("Error listing role kits: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list role kits")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role_kits": kits,
		"count":     len(kits),
	})
}

// handleGetRoleKit returns a single role kit by ID.
func (s *Server) handleGetRoleKit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid role kit ID")
		return
	}

	kit, err := s.store.GetRoleKitByID(r.Context(), id)
	if err != nil {
		log.Printf("Error fetching role kit %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch role kit")
		return
	}
	if kit == nil {
		s.errorResponse(w, http.StatusNotFound, "role kit not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, kit)
}

// handleReprocess runs the batch reprocessor. Admin-only; the run is
// synchronous and the full report is returned.
func (s *Server) handleReprocess(w http.ResponseWriter, r *http.Request) {
	var req types.ReprocessRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r.Body, &req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := req.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	workers := req.Workers
	if workers == 0 {
		workers = s.workers
	}

	report, err := s.engine.ReprocessAllJobs(r.Context(), resolve.ReprocessOptions{Workers: workers})
	if err != nil {
		log.Printf("Error reprocessing jobs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to reprocess jobs")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// ensureInputForJob maps a stored job target onto the generator's input.
func ensureInputForJob(job *types.JobTarget) resolve.EnsureInput {
	input := resolve.EnsureInput{
		RawTitle: job.RoleTitle,
		Parsed:   job.ParsedJD,
	}
	if job.JDText != nil {
		input.JDText = *job.JDText
	}
	if job.CompanyName != nil {
		input.CompanyName = *job.CompanyName
	}
	return input
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
